// main.go
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	"thrift-rizz/controllers"
	"thrift-rizz/events"
	"thrift-rizz/metrics"
	"thrift-rizz/routes"
	"thrift-rizz/services"
	"thrift-rizz/store"
	"thrift-rizz/utils"
)

func main() {
	// Load environment variables from .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Proceeding with environment variables.")
	}

	// Set the session token secret
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		utils.JwtKey = []byte(secret)
	}

	// Pick the store driver: MongoDB when configured, JSON files otherwise
	var st store.Store
	if uri := os.Getenv("MONGO_URI"); uri != "" {
		mongoStore, err := store.ConnectMongo(uri)
		if err != nil {
			log.Fatal(err)
		}
		defer func() {
			if err := mongoStore.Disconnect(context.TODO()); err != nil {
				log.Fatal(err)
			}
		}()
		st = mongoStore
	} else {
		dataDir := os.Getenv("DATA_DIR")
		if dataDir == "" {
			dataDir = "data"
		}
		fileStore, err := store.NewJSONFileStore(dataDir)
		if err != nil {
			log.Fatal(err)
		}
		st = fileStore
	}

	// Initialize services
	catalog := services.NewCatalog(st)
	if err := catalog.Seed(context.Background()); err != nil {
		log.Fatal(err)
	}
	orders := services.NewOrders(st)
	carts := services.NewCarts(orders)
	session := services.NewSession(context.Background(), st)

	// Optional notification channels
	emailService := utils.NewEmailService()
	publisher := events.NewPublisher(os.Getenv("KAFKA_BROKERS"))
	defer publisher.Close()

	// Initialize controllers
	productController := controllers.NewProductController(catalog)
	cartController := controllers.NewCartController(carts, catalog)
	orderController := controllers.NewOrderController(orders, carts, emailService, publisher)
	sessionController := controllers.NewSessionController(session)

	// Set up the router
	router := mux.NewRouter()
	routes.RegisterRoutes(router, productController, cartController, orderController, sessionController)

	// Instrument every request
	serverMetrics := metrics.NewServerMetrics()
	router.Use(serverMetrics.Middleware)

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	fmt.Printf("Server is running on port %s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}
