package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/saeidalz13/battleship-autoplay/api"
	"github.com/saeidalz13/battleship-autoplay/db"
	"github.com/saeidalz13/battleship-autoplay/db/sqlc"
	"github.com/saeidalz13/battleship-autoplay/internal/config"
	mb "github.com/saeidalz13/battleship-autoplay/models/battleship"
	mc "github.com/saeidalz13/battleship-autoplay/models/connection"
)

func main() {
	env, err := config.LoadServerEnv(".env")
	if err != nil {
		panic(err)
	}

	// Analytics are optional; without a database the
	// server runs games only
	var querier sqlc.Querier
	if env.DatabaseUrl != "" {
		psqlDb := db.MustConnectToDb(env.DatabaseUrl, db.DefaultMigrationDir)
		defer psqlDb.Close()
		querier = sqlc.New(psqlDb)
	} else {
		log.Println("DATABASE_URL not set; analytics disabled")
	}

	sessionManager := mc.NewBattleshipSessionManager()
	gameManager := mb.NewBattleshipGameManager(mb.WithOnEvict(sessionManager.UnwatchGame))

	stopCleanup := make(chan struct{})
	defer close(stopCleanup)
	go sessionManager.CleanupPeriodically(stopCleanup)
	go gameManager.CleanupPeriodically(stopCleanup)

	rp := api.NewRequestProcessor(sessionManager, gameManager, sqlc.NewDbManager(querier))

	log.Printf("Listening to port %d (stage: %s)\n", env.Port, env.Stage)
	log.Fatalln(http.ListenAndServe(fmt.Sprintf("0.0.0.0:%d", env.Port), api.NewRouter(rp)))
}
