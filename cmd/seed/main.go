// Command seed loads the demo dataset: the head office account, two outlet
// accounts (password "password" for all three) and the starting catalog.
package main

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/mardiana36/anemone-outlet-system/internal/auth"
	"github.com/mardiana36/anemone-outlet-system/internal/config"
	"github.com/mardiana36/anemone-outlet-system/internal/product"
	"github.com/mardiana36/anemone-outlet-system/internal/user"
)

func main() {
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("db connect error: %v", err)
	}
	defer pool.Close()

	users := user.NewPGRepo(pool)
	products := product.NewPGRepo(pool)

	hash, err := user.HashPassword("password")
	if err != nil {
		log.Fatalf("hash error: %v", err)
	}

	seedUsers := []user.User{
		{Name: "Head Office", Email: "ho@anemone.com", Role: auth.RoleHO},
		{Name: "Outlet Jakarta", Email: "outlet1@anemone.com", Role: auth.RoleOutlet},
		{Name: "Outlet Surabaya", Email: "outlet2@anemone.com", Role: auth.RoleOutlet},
	}
	for _, u := range seedUsers {
		u.ID = uuid.NewString()
		u.PasswordHash = hash
		if err := users.Create(ctx, &u); err != nil {
			log.Fatalf("seed user %s: %v", u.Email, err)
		}
		log.Printf("[seed] user %s (%s)", u.Email, u.Role)
	}

	seedProducts := []struct {
		name  string
		price int64
		stock int
	}{
		{"Buku Matematika", 50000, 100},
		{"Modul IPA", 75000, 80},
		{"Alat Tulis Paket", 30000, 150},
		{"Buku Bahasa Inggris", 60000, 60},
		{"Kalkulator Scientific", 120000, 40},
		{"Atlas Indonesia", 45000, 75},
		{"Paket Pensil Warna", 25000, 200},
		{"Buku Tata Bahasa", 55000, 90},
	}
	for _, sp := range seedProducts {
		p := &product.Product{
			ID:    uuid.NewString(),
			Name:  sp.name,
			Price: decimal.NewFromInt(sp.price).StringFixed(2),
			Stock: sp.stock,
		}
		if err := products.Create(ctx, p); err != nil {
			log.Fatalf("seed product %s: %v", sp.name, err)
		}
		log.Printf("[seed] product %s price=%s stock=%d", p.Name, p.Price, p.Stock)
	}

	log.Printf("[seed] done: %d users, %d products", len(seedUsers), len(seedProducts))
}
