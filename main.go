package main

import (
	"log"

	"github.com/priyanshusingh1234/spell/config"
	"github.com/priyanshusingh1234/spell/db"
	"github.com/priyanshusingh1234/spell/server"
	"github.com/priyanshusingh1234/spell/services"
)

func main() {
	conf, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	gormDB := db.GetDB(conf)
	authRepo := db.NewAuthRepo(gormDB)
	postRepo := db.NewPostRepo(gormDB)

	mediaService, err := services.NewMediaService(conf)
	if err != nil {
		log.Fatalf("error setting up media store: %v", err)
	}
	authService := services.NewAuthService(authRepo, mediaService, conf)
	postService := services.NewPostService(postRepo, authRepo, mediaService, conf)

	s := &server.Server{
		Config:         conf,
		AuthRepository: authRepo,
		AuthService:    authService,
		PostRepository: postRepo,
		PostService:    postService,
		MediaService:   mediaService,
		DB:             *gormDB,
	}

	s.Start()
}
