package main

import (
	"log"
	"os"

	"github.com/valyala/fasthttp"

	"claim-engine/internal/address"
	"claim-engine/internal/handler"
	"claim-engine/internal/session"
	"claim-engine/internal/submission"
)

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	postcodeURL := os.Getenv("POSTCODE_API_URL")
	if postcodeURL == "" {
		postcodeURL = "https://api.postcodes.io"
	}

	sinkURL := os.Getenv("CLAIM_SINK_URL")
	if sinkURL == "" {
		sinkURL = "http://localhost:9090/tax-entries"
	}

	store := session.NewStore(
		address.NewClient(postcodeURL),
		submission.NewClient(sinkURL, nil),
		nil,
	)
	router := handler.NewRouter(store)

	log.Printf("Claim engine starting on port %s", port)
	if err := fasthttp.ListenAndServe(":"+port, router.Handle); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
