package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"cardvault/internal/constants"
	"cardvault/internal/db"
)

func main() {
	label := flag.String("label", "", "label describing who the key is for")
	flag.Parse()

	conn, err := sqlx.Connect("postgres", db.Dsn())
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer conn.Close()

	key := uuid.NewString()
	if _, err := conn.Exec(constants.InsertApiKey, key, *label); err != nil {
		log.Fatalf("insert api key: %v", err)
	}

	fmt.Println("New API Key:", key)
}
