package main

import (
	"log"

	"github.com/mytheresa/go-shop/config"
	"github.com/mytheresa/go-shop/database"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config: ", err)
	}

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatal(err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	log.Println("Connected and migrated successfully")
}
