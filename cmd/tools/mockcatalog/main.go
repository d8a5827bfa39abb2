// mockcatalog serves the catalog dialect the storefront consumes, seeded
// with the Sra. Burga menu. Point CATALOG_BASE_URL at it for local work:
//
//	go run ./cmd/tools/mockcatalog -addr :9090
//	CATALOG_BASE_URL=http://localhost:9090 go run ./cmd/web
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
)

type category struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl,omitempty"`
}

type product struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price,omitempty"`
	ImageURL    string  `json:"imageUrl,omitempty"`
	CategoryID  int     `json:"categoryId"`
}

var categories = []category{
	{ID: 1, Name: "HAMBURGUESAS CON PAPAS", ImageURL: "/rewards/free-burger.png"},
	{ID: 2, Name: "HAMBURGUESAS SIN PAPAS", ImageURL: "/gourmet-burger-without-fries.png"},
	{ID: 3, Name: "BEBIDAS", ImageURL: "/refreshing-drinks-and-sodas.png"},
	{ID: 4, Name: "EXTRAS", ImageURL: "/burger-extras-and-sides.png"},
}

var products = []product{
	{ID: 1, Name: "CHEESEBURGER CON PAPAS", Description: "Pan de papa, un medallón de carne, doble feta de queso cheddar, mayonesa, ketchup y cebolla", Price: 9900, CategoryID: 1},
	{ID: 2, Name: "DOBLE CUARTO DE LIBRA CON PAPAS", Description: "Doble medallón de carne, queso cheddar, lechuga, tomate, cebolla y salsa especial", Price: 12800, CategoryID: 1},
	{ID: 3, Name: "ROYAL CON PAPAS", Description: "Medallón de carne premium, queso suizo, bacon, lechuga y salsa royal", Price: 12800, CategoryID: 1},
	{ID: 4, Name: "CHEESEBURGER SIMPLE", Description: "Pan de papa, medallón de carne, queso cheddar, mayonesa, ketchup y cebolla", Price: 7500, CategoryID: 2},
	{ID: 5, Name: "HAMBURGUESA DOBLE", Description: "Pan de papa, doble medallón de carne, queso cheddar, lechuga, tomate", Price: 9200, CategoryID: 2},
	{ID: 6, Name: "COCA COLA 500ML", Description: "Bebida gaseosa Coca Cola 500ml", Price: 2500, CategoryID: 3},
	{ID: 7, Name: "AGUA MINERAL", Description: "Agua mineral sin gas 500ml", Price: 1800, CategoryID: 3},
	{ID: 8, Name: "PAPAS FRITAS GRANDES", Description: "Porción grande de papas fritas crujientes", Price: 3500, CategoryID: 4},
	{ID: 9, Name: "AROS DE CEBOLLA", Description: "Aros de cebolla empanados y fritos", Price: 4200, CategoryID: 4},
}

func main() {
	addr := flag.String("addr", ":9090", "listen address")
	flag.Parse()

	mux := http.NewServeMux()
	mux.HandleFunc("/categories", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, categories)
	})
	mux.HandleFunc("/products", func(w http.ResponseWriter, r *http.Request) {
		want := r.URL.Query().Get("categoryId")
		out := make([]product, 0)
		for _, p := range products {
			if want == "" || fmt.Sprint(p.CategoryID) == want {
				out = append(out, p)
			}
		}
		writeJSON(w, out)
	})
	mux.HandleFunc("/products/", func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimPrefix(r.URL.Path, "/products/")
		for _, p := range products {
			if fmt.Sprint(p.ID) == id {
				writeJSON(w, p)
				return
			}
		}
		http.NotFound(w, r)
	})

	fmt.Fprintf(os.Stderr, "mockcatalog listening on %s\n", *addr)
	log.Fatal(http.ListenAndServe(*addr, mux))
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
