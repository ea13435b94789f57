package battleship

import (
	"context"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	cerr "github.com/saeidalz13/battleship-setup/internal/error"
)

const (
	DefaultBoardMaxAge     time.Duration = time.Minute * 30
	DefaultCleanupInterval time.Duration = time.Minute * 5
)

// ManagedBoard is a registered board behind its own lock, for when
// more than one goroutine may reach it.
type ManagedBoard struct {
	id        string
	seed      int64
	board     *Board
	createdAt time.Time
	mu        sync.Mutex
}

func (mb *ManagedBoard) Id() string {
	return mb.id
}

func (mb *ManagedBoard) Seed() int64 {
	return mb.seed
}

func (mb *ManagedBoard) CreatedAt() time.Time {
	return mb.createdAt
}

func (mb *ManagedBoard) Render() string {
	mb.mu.Lock()
	defer mb.mu.Unlock()
	return mb.board.String()
}

func (mb *ManagedBoard) Snapshot() BoardSnapshot {
	mb.mu.Lock()
	defer mb.mu.Unlock()
	return mb.board.Snapshot()
}

// Do runs fn while holding the board lock.
func (mb *ManagedBoard) Do(fn func(b *Board)) {
	mb.mu.Lock()
	defer mb.mu.Unlock()
	fn(mb.board)
}

type BoardManager interface {
	CreateBoard(size int, lengths []int, seed int64) (*ManagedBoard, error)
	AddBoard(board *Board, seed int64) *ManagedBoard
	GetBoard(boardId string) (*ManagedBoard, error)
	DeleteBoard(boardId string)
	Count() int
	CleanupPeriodically(ctx context.Context, interval, maxAge time.Duration)
}

type BattleshipBoardManager struct {
	boards map[string]*ManagedBoard
	mu     sync.RWMutex
}

var _ BoardManager = (*BattleshipBoardManager)(nil)

func NewBattleshipBoardManager() *BattleshipBoardManager {
	return &BattleshipBoardManager{
		boards: make(map[string]*ManagedBoard, 10),
	}
}

func (bbm *BattleshipBoardManager) CreateBoard(size int, lengths []int, seed int64) (*ManagedBoard, error) {
	rng := rand.New(rand.NewSource(seed))
	board, err := GenerateBoard(size, lengths, rng, DefaultSetupAttempts)
	if err != nil {
		return nil, err
	}

	return bbm.AddBoard(board, seed), nil
}

func (bbm *BattleshipBoardManager) AddBoard(board *Board, seed int64) *ManagedBoard {
	managed := &ManagedBoard{
		id:        uuid.NewString()[:6],
		seed:      seed,
		board:     board,
		createdAt: time.Now(),
	}

	bbm.mu.Lock()
	bbm.boards[managed.id] = managed
	bbm.mu.Unlock()

	return managed
}

func (bbm *BattleshipBoardManager) GetBoard(boardId string) (*ManagedBoard, error) {
	bbm.mu.RLock()
	board, prs := bbm.boards[boardId]
	bbm.mu.RUnlock()
	if !prs {
		return nil, cerr.ErrBoardNotExists(boardId)
	}

	return board, nil
}

func (bbm *BattleshipBoardManager) DeleteBoard(boardId string) {
	bbm.mu.Lock()
	delete(bbm.boards, boardId)
	bbm.mu.Unlock()
}

func (bbm *BattleshipBoardManager) Count() int {
	bbm.mu.RLock()
	defer bbm.mu.RUnlock()
	return len(bbm.boards)
}

// deleteExpired drops boards created more than maxAge ago and
// returns how many were removed.
func (bbm *BattleshipBoardManager) deleteExpired(maxAge time.Duration) int {
	bbm.mu.Lock()
	defer bbm.mu.Unlock()

	deleted := 0
	for id, board := range bbm.boards {
		if time.Since(board.CreatedAt()) > maxAge {
			delete(bbm.boards, id)
			deleted++
		}
	}
	return deleted
}

func (bbm *BattleshipBoardManager) CleanupPeriodically(ctx context.Context, interval, maxAge time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if deleted := bbm.deleteExpired(maxAge); deleted > 0 {
				log.Printf("cleaned up %d expired boards\n", deleted)
			}
		}
	}
}
