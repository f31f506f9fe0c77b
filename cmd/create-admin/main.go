// Command create-admin provisions an admin panel account.
//
//	go run ./cmd/create-admin -email admin@example.com -name "Admin" -password secret
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"qualityze-admin-be/config"
	"qualityze-admin-be/internal/database"
	"qualityze-admin-be/internal/models"
	"qualityze-admin-be/internal/repository"
	"qualityze-admin-be/internal/utils"
)

func main() {
	email := flag.String("email", "", "admin email")
	name := flag.String("name", "Admin", "display name")
	password := flag.String("password", "", "password (min 6 chars)")
	flag.Parse()

	if *email == "" || len(*password) < 6 {
		log.Fatal("usage: create-admin -email <email> -password <password, min 6 chars> [-name <name>]")
	}

	cfg := config.Load()

	mongodb, err := database.NewMongoDB(cfg.MongoDBURI, cfg.MongoDBDatabase)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongodb.Disconnect()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userRepo := repository.NewUserRepository(mongodb)

	if existing, err := userRepo.FindByEmail(ctx, *email); err == nil && existing != nil {
		log.Fatal("User already exists:", *email)
	}

	hash, err := utils.HashPassword(*password)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	user := &models.User{
		Email:    *email,
		Name:     *name,
		Password: hash,
	}
	if err := userRepo.Create(ctx, user); err != nil {
		log.Fatal("Failed to create user:", err)
	}

	log.Println("Created admin account:", *email)
}
