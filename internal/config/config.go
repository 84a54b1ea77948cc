package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port       string
	DBDSN      string
	JWTSecret  string
	UploadDir  string
	InvoiceDir string
	LogFile    string
}

func Load() Config {
	// Local development convenience; a missing .env is not an error.
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "9090"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "photonx.db"
	} // sqlite file in project root
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "dev-secret-change-me"
		log.Println("[config] JWT_SECRET not set, using insecure dev default")
	}
	uploads := os.Getenv("UPLOAD_DIR")
	if uploads == "" {
		uploads = "./public/uploads"
	}
	invoices := os.Getenv("INVOICE_DIR")
	if invoices == "" {
		invoices = "./assets/invoices"
	}
	logFile := os.Getenv("LOG_FILE")

	cfg := Config{Port: port, DBDSN: dsn, JWTSecret: secret, UploadDir: uploads, InvoiceDir: invoices, LogFile: logFile}
	log.Printf("[config] PORT=%s DB_DSN=%s UPLOAD_DIR=%s INVOICE_DIR=%s", cfg.Port, cfg.DBDSN, cfg.UploadDir, cfg.InvoiceDir)
	return cfg
}
