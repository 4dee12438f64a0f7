// Package main implements a standalone seed script that populates a running
// Mangaiyar Fresh Foods backend with a realistic grocery catalog: products
// with weight variants, hero and promo banners, and a couple of blog posts.
// Everything goes through the public HTTP API so the script doubles as a
// smoke test for the write endpoints.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"
)

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func httpPost(url string, body any) (map[string]any, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal body: %w", err)
	}

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Post(url, "application/json", bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("POST %s returned %d: %s", url, resp.StatusCode, string(respBody))
	}

	var out map[string]any
	if len(respBody) > 0 {
		if err := json.Unmarshal(respBody, &out); err != nil {
			return nil, fmt.Errorf("decode response: %w", err)
		}
	}
	return out, nil
}

type weightVariant struct {
	Weight string  `json:"weight"`
	Price  float64 `json:"price"`
	MRP    float64 `json:"mrp"`
	Stock  int     `json:"stock"`
}

type product struct {
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	Price          float64         `json:"price"`
	MRP            float64         `json:"mrp"`
	Stock          int             `json:"stock"`
	Weight         string          `json:"weight"`
	WeightVariants []weightVariant `json:"weightVariants,omitempty"`
	Images         []string        `json:"images"`
	Categories     []string        `json:"categories"`
}

type banner struct {
	Title     string `json:"title"`
	Subtitle  string `json:"subtitle"`
	ImageURL  string `json:"imageUrl"`
	LinkURL   string `json:"linkUrl"`
	Position  string `json:"position"`
	SortOrder int    `json:"sortOrder"`
}

type post struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Excerpt string   `json:"excerpt"`
	Tags    []string `json:"tags"`
	Author  string   `json:"author"`
}

var products = []product{
	{
		Title:       "Country Cucumber",
		Description: "Farm fresh country cucumbers, picked the same morning.",
		Weight:      "500 g",
		WeightVariants: []weightVariant{
			{Weight: "500 g", Price: 25, MRP: 30, Stock: 120},
			{Weight: "1 kg", Price: 45, MRP: 55, Stock: 80},
		},
		Images:     []string{"https://res.cloudinary.com/demo/image/upload/cucumber.jpg"},
		Categories: []string{"fruits-vegetables"},
	},
	{
		Title:       "Country Chicken Eggs",
		Description: "Free range country eggs, pack of 6.",
		Price:       72,
		MRP:         84,
		Stock:       60,
		Weight:      "6 pcs",
		Images:      []string{"https://res.cloudinary.com/demo/image/upload/eggs.jpg"},
		Categories:  []string{"dairy-eggs"},
	},
	{
		Title:       "Organic Jaggery Powder",
		Description: "Chemical free jaggery powder made from sugarcane.",
		Weight:      "500 g",
		WeightVariants: []weightVariant{
			{Weight: "250 g", Price: 60, MRP: 75, Stock: 90},
			{Weight: "500 g", Price: 110, MRP: 140, Stock: 70},
			{Weight: "1 kg", Price: 200, MRP: 260, Stock: 40},
		},
		Images:     []string{"https://res.cloudinary.com/demo/image/upload/jaggery.jpg"},
		Categories: []string{"spices-masalas"},
	},
	{
		Title:       "Cold Pressed Groundnut Oil",
		Description: "Wood pressed groundnut oil, no refining, no additives.",
		Weight:      "1 L",
		WeightVariants: []weightVariant{
			{Weight: "500 ml", Price: 190, MRP: 220, Stock: 50},
			{Weight: "1 L", Price: 360, MRP: 420, Stock: 35},
		},
		Images:     []string{"https://res.cloudinary.com/demo/image/upload/groundnut-oil.jpg"},
		Categories: []string{"oils-ghee"},
	},
	{
		Title:       "Traditional Ponni Rice",
		Description: "Aged ponni boiled rice from Thanjavur delta farms.",
		Weight:      "5 kg",
		WeightVariants: []weightVariant{
			{Weight: "1 kg", Price: 68, MRP: 80, Stock: 100},
			{Weight: "5 kg", Price: 320, MRP: 380, Stock: 45},
		},
		Images:     []string{"https://res.cloudinary.com/demo/image/upload/ponni-rice.jpg"},
		Categories: []string{"rice-grains"},
	},
	{
		Title:       "Homemade Ghee",
		Description: "Desi cow ghee prepared in small batches from cultured butter.",
		Weight:      "250 ml",
		WeightVariants: []weightVariant{
			{Weight: "250 ml", Price: 290, MRP: 340, Stock: 30},
			{Weight: "500 ml", Price: 560, MRP: 650, Stock: 20},
		},
		Images:     []string{"https://res.cloudinary.com/demo/image/upload/ghee.jpg"},
		Categories: []string{"oils-ghee", "dairy-eggs"},
	},
	{
		Title:       "Kai Murukku",
		Description: "Hand twisted murukku made with butter and rice flour.",
		Price:       140,
		MRP:         160,
		Stock:       55,
		Weight:      "250 g",
		Images:      []string{"https://res.cloudinary.com/demo/image/upload/murukku.jpg"},
		Categories:  []string{"snacks-sweets"},
	},
}

var banners = []banner{
	{
		Title:     "Farm Fresh, Delivered Daily",
		Subtitle:  "Vegetables picked this morning, at your door by evening",
		ImageURL:  "https://res.cloudinary.com/demo/image/upload/hero-veggies.jpg",
		LinkURL:   "/category/fruits-vegetables",
		Position:  "hero",
		SortOrder: 1,
	},
	{
		Title:     "Cold Pressed Oils",
		Subtitle:  "Wood pressed the traditional way",
		ImageURL:  "https://res.cloudinary.com/demo/image/upload/hero-oils.jpg",
		LinkURL:   "/category/oils-ghee",
		Position:  "hero",
		SortOrder: 2,
	},
	{
		Title:     "Festival Sweets Pre-order",
		Subtitle:  "Order 2 days ahead for fresh preparation",
		ImageURL:  "https://res.cloudinary.com/demo/image/upload/promo-sweets.jpg",
		LinkURL:   "/category/snacks-sweets",
		Position:  "promo",
		SortOrder: 1,
	},
}

var posts = []post{
	{
		Title:   "Why Cold Pressed Oil Is Worth the Switch",
		Content: "Refined oils are stripped of flavour and nutrients during processing. Cold pressed oils keep both intact because the seeds are crushed slowly at low temperature...",
		Excerpt: "What actually happens when oil is refined, and why the old way is better.",
		Tags:    []string{"oils", "health"},
		Author:  "Mangaiyar Team",
	},
	{
		Title:   "A Week of Meals with Ponni Rice",
		Content: "Aged ponni rice cooks fluffy and holds its shape, which makes it the workhorse of a Tamil kitchen. Here is a week of simple meals built around it...",
		Excerpt: "Seven simple meals built around the staple of the Tamil kitchen.",
		Tags:    []string{"recipes", "rice"},
		Author:  "Mangaiyar Team",
	},
}

func main() {
	base := getEnv("API_BASE_URL", "http://localhost:8080")

	log.Printf("seeding catalog against %s", base)

	for _, p := range products {
		if _, err := httpPost(base+"/api/products/", p); err != nil {
			log.Fatalf("seed product %q: %v", p.Title, err)
		}
		log.Printf("created product %q", p.Title)
	}

	for _, b := range banners {
		if _, err := httpPost(base+"/api/banners/", b); err != nil {
			log.Fatalf("seed banner %q: %v", b.Title, err)
		}
		log.Printf("created banner %q", b.Title)
	}

	for _, p := range posts {
		if _, err := httpPost(base+"/api/blog/", p); err != nil {
			log.Fatalf("seed post %q: %v", p.Title, err)
		}
		log.Printf("created post %q", p.Title)
	}

	log.Printf("seed complete: %d products, %d banners, %d posts", len(products), len(banners), len(posts))
}
