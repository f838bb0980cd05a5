package main

import (
	"log"
	"net/http"

	"drivethru/config"
	httpapi "drivethru/internal/api/http"
	"drivethru/internal/archive"
	"drivethru/internal/catalog"
	"drivethru/internal/resolution"
	"drivethru/internal/session"
	"drivethru/internal/split"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func main() {
	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	kafkaWriter := config.NewKafkaWriter(config.ArchiveTopic)
	defer kafkaWriter.Close()

	repo := catalog.NewPostgresRepository(db)
	cache := catalog.NewMenuCache(rdb, catalog.DefaultMenuTTL)
	menu := catalog.NewService(repo, cache)

	resolver := resolution.NewEngine(menu)
	publisher := archive.NewKafkaPublisher(kafkaWriter)
	archiveStore := archive.NewPostgresStore(db)
	orders := session.NewStore(session.NewKV(rdb), menu, publisher, archiveStore)
	splitter := split.NewEngine(menu)

	handler := httpapi.NewHandler(resolver, orders, splitter, menu)

	r := mux.NewRouter()
	handler.RegisterRoutes(r)

	port := config.Port("8080")
	log.Println("Drive-thru ordering service starting on port " + port)
	log.Fatal(http.ListenAndServe(":"+port, cors.Default().Handler(r)))
}
