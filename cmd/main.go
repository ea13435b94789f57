package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/saeidalz13/battleship-setup/api"
	"github.com/saeidalz13/battleship-setup/db"
	"github.com/saeidalz13/battleship-setup/db/sqlc"
	mb "github.com/saeidalz13/battleship-setup/models/battleship"
)

const shutdownTimeout = time.Second * 10

func main() {
	if os.Getenv("STAGE") != api.StageProd {
		if err := godotenv.Load(".env"); err != nil {
			panic(err)
		}
	}
	stage := os.Getenv("STAGE")
	if stage != api.StageDev && stage != api.StageProd {
		panic("stage must be either dev or prod")
	}

	opts := []api.Option{api.WithStage(stage)}

	// Without PORT the server keeps its default 8000
	if rawPort := os.Getenv("PORT"); rawPort != "" {
		port, err := strconv.Atoi(rawPort)
		if err != nil {
			panic(err)
		}
		opts = append(opts, api.WithPort(port))
	}

	// Analytics are optional; without a database the server
	// still generates boards
	if psqlUrl := os.Getenv("DATABASE_URL"); psqlUrl != "" {
		migrationDir := os.Getenv("MIGRATION_DIR")
		if migrationDir == "" {
			migrationDir = db.DefaultMigrationDir
		}
		conn := db.MustConnectToDb(psqlUrl, migrationDir)
		defer conn.Close()
		opts = append(opts, api.WithQuerier(sqlc.New(conn)))
	} else {
		log.Println("DATABASE_URL not set; analytics disabled")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	boardManager := mb.NewBattleshipBoardManager()
	go boardManager.CleanupPeriodically(ctx, mb.DefaultCleanupInterval, mb.DefaultBoardMaxAge)

	server := api.NewServer(append(opts, api.WithBoardManager(boardManager))...)
	httpServer := server.HTTPServer()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Println("shutdown:", err)
		}
	}()

	log.Printf("Listening to %s\n", server.Addr())
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalln(err)
	}
}
