package connection

type ReqGenerateBoard struct {
	Size    int   `json:"size"`
	Seed    int64 `json:"seed"`
	Lengths []int `json:"lengths"`
}
