package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"

	"bookcatalog/db/migrations"
	"bookcatalog/internal/auth"
	"bookcatalog/internal/book"
	"bookcatalog/internal/gql"
	"bookcatalog/internal/httpx"
)

func main() {
	_ = godotenv.Load(".env.local")

	port := getEnv("PORT", "3000")
	dbPath := getEnv("DB_PATH", "database.sqlite")
	authDomain := mustGetEnv("AUTH0_DOMAIN")
	authAudience := mustGetEnv("AUTH0_AUDIENCE")

	allowedOrigins := []string{
		"http://localhost:5173",
		"http://localhost:5174",
		"http://localhost:5175",
	}
	if frontendURL := os.Getenv("FRONTEND_URL"); frontendURL != "" {
		allowedOrigins = append([]string{frontendURL}, allowedOrigins...)
	}

	db := mustOpenDB(dbPath)
	defer db.Close()

	repo := book.NewSQLiteRepo(db, 5*time.Second)
	service := book.NewService(repo)

	seedCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if _, err := service.Seed(seedCtx); err != nil {
		log.Fatalf("seed catalog: %v", err)
	}

	verifier, err := auth.NewJWKSVerifier(context.Background(), authDomain, authAudience)
	if err != nil {
		log.Fatalf("configure token verifier: %v", err)
	}

	schema, err := gql.NewSchema(service)
	if err != nil {
		log.Fatalf("build graphql schema: %v", err)
	}

	router := http.NewServeMux()

	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.HandleFunc("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 500*time.Millisecond)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	graphqlHandler := httpx.AuthMiddleware(verifier)(gql.NewHTTPHandler(schema))
	router.Handle("/graphql", graphqlHandler)

	rateLimit := httpx.NewRateLimitMiddleware(20, 40)
	handler := httpx.RequestIDMiddleware(
		httpx.AccessLogMiddleware(
			httpx.RecoveryMiddleware(
				httpx.CORSMiddleware(allowedOrigins)(
					httpx.SecurityHeadersMiddleware(
						httpx.RequestSizeLimitMiddleware(1<<20)(
							rateLimit.Middleware(router)))))))

	httpServer := &http.Server{
		Addr:         ":" + port,
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Printf("Starting server on :%s", port)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func mustGetEnv(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	log.Fatalf("missing required environment variable: %s", key)
	return ""
}

func mustOpenDB(path string) *sql.DB {
	db, err := book.OpenSQLite(path)
	if err != nil {
		log.Fatalf("cannot open database %s: %v", path, err)
	}

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("sqlite3"); err != nil {
		db.Close()
		log.Fatalf("set migration dialect: %v", err)
	}
	if err := goose.Up(db, "."); err != nil {
		db.Close()
		log.Fatalf("apply migrations: %v", err)
	}

	log.Println("database ready")
	return db
}
