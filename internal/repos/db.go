package repos

import (
	"log"

	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
	_ "modernc.org/sqlite"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	// Seed baseline data if DB is empty (idempotent; safe to run every start)
	if err := seedIfEmpty(db); err != nil {
		return nil, err
	}
	if err := seedUsers(db); err != nil {
		return nil, err
	}

	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

-- Users
CREATE TABLE IF NOT EXISTS users(
  id TEXT PRIMARY KEY,
  email TEXT NOT NULL UNIQUE,
  name TEXT NOT NULL,
  password_hash TEXT NOT NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email ON users(LOWER(email));

-- Categories
CREATE TABLE IF NOT EXISTS categories(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  description TEXT,
  image_url TEXT,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_categories_name_nocase ON categories(LOWER(name));

-- Products
CREATE TABLE IF NOT EXISTS products(
  id TEXT PRIMARY KEY,
  category_id TEXT NOT NULL REFERENCES categories(id) ON DELETE RESTRICT,
  name TEXT NOT NULL,
  description TEXT,
  price NUMERIC NOT NULL CHECK (price >= 0),
  stock INTEGER NOT NULL DEFAULT 0 CHECK (stock >= 0),
  image_url TEXT,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);
CREATE INDEX IF NOT EXISTS idx_products_category ON products(category_id);
CREATE INDEX IF NOT EXISTS idx_products_name     ON products(LOWER(name));

-- Variants
CREATE TABLE IF NOT EXISTS variants(
  id TEXT PRIMARY KEY,
  product_id TEXT NOT NULL REFERENCES products(id) ON DELETE CASCADE,
  size TEXT NOT NULL,
  color TEXT NOT NULL,
  stock INTEGER NOT NULL DEFAULT 0 CHECK (stock >= 0),
  files_json TEXT NOT NULL DEFAULT '[]',
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  UNIQUE(product_id, size, color)
);
CREATE INDEX IF NOT EXISTS idx_variants_product ON variants(product_id);

-- Carts (one active cart per user)
CREATE TABLE IF NOT EXISTS carts(
  id TEXT PRIMARY KEY,
  user_id TEXT UNIQUE NOT NULL REFERENCES users(id) ON DELETE CASCADE,
  total_price NUMERIC NOT NULL DEFAULT 0,
  updated_at TEXT
);

CREATE TABLE IF NOT EXISTS cart_items(
  cart_id    TEXT NOT NULL REFERENCES carts(id) ON DELETE CASCADE,
  product_id TEXT NOT NULL REFERENCES products(id) ON DELETE RESTRICT,
  qty INTEGER NOT NULL CHECK (qty >= 1),
  created_at TEXT,
  updated_at TEXT,
  PRIMARY KEY (cart_id, product_id)
);

-- Orders
CREATE TABLE IF NOT EXISTS orders(
  id TEXT PRIMARY KEY,
  user_id TEXT NOT NULL REFERENCES users(id),
  total_amount NUMERIC NOT NULL,
  status TEXT NOT NULL DEFAULT 'pending',
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_orders_user       ON orders(user_id);
CREATE INDEX IF NOT EXISTS idx_orders_created_at ON orders(created_at);

CREATE TABLE IF NOT EXISTS order_items(
  order_id   TEXT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
  product_id TEXT NOT NULL REFERENCES products(id),
  qty INTEGER NOT NULL,
  price NUMERIC NOT NULL,
  PRIMARY KEY (order_id, product_id)
);
`
	_, err := db.Exec(schema)
	return err
}

func seedIfEmpty(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM categories`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting demo categories/products/variants")

	tx := db.MustBegin()
	tx.MustExec(`INSERT INTO categories(id,name,description,image_url) VALUES
	  ('cameras','Cameras','Mirrorless and DSLR bodies','/public/uploads/cat-cameras.jpg'),
	  ('lenses','Lenses','Prime and zoom glass','/public/uploads/cat-lenses.jpg'),
	  ('lighting','Lighting','Strobes and modifiers','/public/uploads/cat-lighting.jpg')`)

	tx.MustExec(`INSERT INTO products(id,category_id,name,description,price,stock,image_url) VALUES
	  ('cam-x100','cameras','PhotonX 100','Entry mirrorless body',499.00,12,'/public/uploads/cam-x100.jpg'),
	  ('cam-x500','cameras','PhotonX 500','Full-frame mirrorless body',1499.00,4,'/public/uploads/cam-x500.jpg'),
	  ('lens-35','lenses','35mm f/1.8 Prime','Fast wide prime',329.50,20,'/public/uploads/lens-35.jpg'),
	  ('strobe-01','lighting','Studio Strobe 400Ws','Monolight with modeling lamp',189.99,8,'/public/uploads/strobe-01.jpg')`)

	tx.MustExec(`INSERT INTO variants(id,product_id,size,color,stock,files_json) VALUES
	  ('var-x100-blk','cam-x100','standard','black',8,'["/public/uploads/cam-x100-black.jpg"]'),
	  ('var-x100-slv','cam-x100','standard','silver',4,'["/public/uploads/cam-x100-silver.jpg"]')`)

	return tx.Commit()
}

// seedUsers ensures a couple of demo accounts exist (idempotent).
func seedUsers(db *sqlx.DB) error {
	type u struct {
		ID, Email, Name, Hash string
	}
	mk := func(id, email, name, raw string) u {
		h, _ := bcrypt.GenerateFromPassword([]byte(raw), 10)
		return u{ID: id, Email: email, Name: name, Hash: string(h)}
	}

	users := []u{
		mk("u-asha", "asha@photonx.test", "Asha", "Passw0rd!"),
		mk("u-ravi", "ravi@photonx.test", "Ravi", "Passw0rd!"),
	}

	tx := db.MustBegin()
	defer func() { _ = tx.Rollback() }()

	for _, x := range users {
		if _, err := tx.Exec(`
			INSERT INTO users(id,email,name,password_hash)
			VALUES(?,?,?,?)
			ON CONFLICT(email) DO NOTHING
		`, x.ID, x.Email, x.Name, x.Hash); err != nil {
			return err
		}
	}

	return tx.Commit()
}
