package api

import (
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/saeidalz13/battleship-setup/db/sqlc"
	mb "github.com/saeidalz13/battleship-setup/models/battleship"
)

const (
	StageProd = "prod"
	StageDev  = "dev"
)

const (
	defaultPort int = 8000

	readHeaderTimeout time.Duration = time.Second * 5
)

type Server struct {
	port         int
	stage        string
	q            sqlc.Querier
	ipnet        net.IPNet
	BoardManager mb.BoardManager
	Analytics    *sqlc.AnalyticsManager
}

type Option func(*Server) error

func NewServer(optFuncs ...Option) *Server {
	server := Server{
		port:  defaultPort,
		stage: StageDev,
		ipnet: getServerIpNet(),
	}
	for _, opt := range optFuncs {
		if err := opt(&server); err != nil {
			panic(err)
		}
	}

	if server.BoardManager == nil {
		server.BoardManager = mb.NewBattleshipBoardManager()
	}
	if server.q != nil {
		server.Analytics = sqlc.NewDbManager(server.q, server.ipnet).Analytics
	}

	return &server
}

func WithPort(port int) Option {
	return func(s *Server) error {
		if port <= 0 || port > 65535 {
			return fmt.Errorf("invalid port: %d", port)
		}
		s.port = port
		return nil
	}
}

func WithStage(stage string) Option {
	return func(s *Server) error {
		if stage != StageProd && stage != StageDev {
			return fmt.Errorf("invalid type of development stage: %s", stage)
		}
		s.stage = stage
		return nil
	}
}

// WithQuerier turns analytics on. Without it nothing is recorded.
func WithQuerier(q sqlc.Querier) Option {
	return func(s *Server) error {
		s.q = q
		return nil
	}
}

func WithBoardManager(bm mb.BoardManager) Option {
	return func(s *Server) error {
		s.BoardManager = bm
		return nil
	}
}

func WithIpNet(ipnet net.IPNet) Option {
	return func(s *Server) error {
		s.ipnet = ipnet
		return nil
	}
}

// GetIpNet is the address analytics rows are keyed by.
func (s *Server) GetIpNet() net.IPNet {
	return s.ipnet
}

func (s *Server) Addr() string {
	return fmt.Sprintf("0.0.0.0:%d", s.port)
}

func (s *Server) Router() *mux.Router {
	rp := NewRequestProcessor(s.BoardManager, s.Analytics)

	r := mux.NewRouter()
	if s.stage == StageDev {
		r.Use(logRequests)
	}

	r.HandleFunc("/health", s.HandleHealth).Methods(http.MethodGet)
	r.HandleFunc("/boards/random", s.HandleRandomBoard).Methods(http.MethodGet)
	r.HandleFunc("/boards/{id}", s.HandleGetBoard).Methods(http.MethodGet)
	r.HandleFunc("/boards/{id}/render", s.HandleRenderBoard).Methods(http.MethodGet)
	r.Handle("/battleship/setup", rp).Methods(http.MethodGet)

	return r
}

func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:              s.Addr(),
		Handler:           s.Router(),
		ReadHeaderTimeout: readHeaderTimeout,
	}
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s\t%s\n", r.Method, r.URL.Path, time.Since(start))
	})
}

// Picks the first non loopback ipv4 address of an interface that is
// up. Analytics rows are keyed by it, so loopback is only a fallback.
func getServerIpNet() net.IPNet {
	loopback := net.IPNet{IP: net.IPv4(127, 0, 0, 1), Mask: net.CIDRMask(32, 32)}

	ifaces, err := net.Interfaces()
	if err != nil {
		log.Println("failed to list network interfaces:", err)
		return loopback
	}

	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp == 0 || iface.Flags&net.FlagLoopback != 0 {
			continue
		}

		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}

		for _, addr := range addrs {
			ipnet, ok := addr.(*net.IPNet)
			if !ok {
				continue
			}

			if ip := ipnet.IP.To4(); ip != nil && !ip.IsLoopback() {
				return net.IPNet{IP: ip, Mask: net.CIDRMask(32, 32)}
			}
		}
	}

	log.Println("no non-loopback ipv4 address found; using 127.0.0.1")
	return loopback
}
