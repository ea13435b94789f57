package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"strconv"
	"strings"

	mb "github.com/saeidalz13/battleship-setup/models/battleship"
)

// Places each length of the fleet at random on one board and prints
// the board and its pieces after every placement.
func main() {
	seed := flag.Int64("seed", 4, "seed of the placement rng")
	size := flag.Int("size", mb.DefaultBoardSize, "board side")
	fleet := flag.String("fleet", "", "comma separated piece lengths (default 0..9)")
	flag.Parse()

	lengths := mb.DemoFleet
	if *fleet != "" {
		parsed, err := parseLengths(*fleet)
		if err != nil {
			log.Fatalln(err)
		}
		lengths = parsed
	}

	board, err := mb.NewBoard(*size)
	if err != nil {
		log.Fatalln(err)
	}
	rng := rand.New(rand.NewSource(*seed))

	for _, length := range lengths {
		if _, err := board.RandomPlace(rng, length); err != nil {
			log.Fatalln(err)
		}
		fmt.Println(board)
		fmt.Println(board.Pieces())
	}
}

func parseLengths(raw string) ([]int, error) {
	fields := strings.Split(raw, ",")
	lengths := make([]int, 0, len(fields))
	for _, field := range fields {
		length, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return nil, fmt.Errorf("invalid piece length %q: %w", field, err)
		}
		lengths = append(lengths, length)
	}
	return lengths, nil
}
