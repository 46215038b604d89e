package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Seeds a running server with demo accounts and listings so the browse,
// search and similar-listings pages have data to show.

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

type seedOwner struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	IsOwner  bool   `json:"isOwner"`
}

type seedListing struct {
	Title             string   `json:"title"`
	Description       string   `json:"description"`
	Location          string   `json:"location"`
	Type              string   `json:"type"`
	Price             float64  `json:"price"`
	Capacity          int      `json:"capacity"`
	MinLease          int      `json:"minLease"`
	Furnished         bool     `json:"furnished"`
	UtilitiesIncluded bool     `json:"utilitiesIncluded"`
	Amenities         []string `json:"amenities"`
}

var owners = []seedOwner{
	{Name: "Dana Whitfield", Email: "dana@example.com", Password: "rooms123", Phone: "555-0141", Address: "12 Harbor Way", IsOwner: true},
	{Name: "Marcus Lee", Email: "marcus@example.com", Password: "rooms123", Phone: "555-0178", Address: "88 Elm Street", IsOwner: true},
}

var listingsByOwner = map[string][]seedListing{
	"dana@example.com": {
		{Title: "Sunny Downtown Studio", Description: "Bright studio near transit.", Location: "Downtown", Type: "studio", Price: 1200, Capacity: 1, MinLease: 6, Furnished: true, UtilitiesIncluded: true, Amenities: []string{"wifi", "laundry"}},
		{Title: "Spacious Riverside Apartment", Description: "Two rooms with a river view.", Location: "Riverside", Type: "apartment", Price: 1650, Capacity: 3, MinLease: 12, Furnished: false, UtilitiesIncluded: false, Amenities: []string{"parking", "balcony"}},
	},
	"marcus@example.com": {
		{Title: "Shared Room near Campus", Description: "Friendly shared house.", Location: "University District", Type: "shared", Price: 550, Capacity: 1, MinLease: 3, Furnished: true, UtilitiesIncluded: true, Amenities: []string{"wifi", "kitchen"}},
		{Title: "Quiet Family House", Description: "Three bedrooms and a garden.", Location: "Downtown", Type: "house", Price: 2400, Capacity: 5, MinLease: 12, Furnished: false, UtilitiesIncluded: false, Amenities: []string{"garden", "garage"}},
	},
}

func baseURL() string {
	if url := os.Getenv("SEED_BASE_URL"); url != "" {
		return url
	}
	return "http://localhost:3536"
}

func postJSON(client *http.Client, path string, token string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequest(http.MethodPost, baseURL()+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	// 409 means the record is already there from a previous run.
	if resp.StatusCode == http.StatusConflict {
		return nil
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("%s: status %d", path, resp.StatusCode)
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

func main() {
	client := &http.Client{Timeout: 10 * time.Second}

	fmt.Println(titleStyle.Render("Seeding room rental data → " + baseURL()))

	for _, owner := range owners {
		if err := postJSON(client, "/api/v1/auth/register", "", owner, nil); err != nil {
			fmt.Println(errStyle.Render("register " + owner.Email + ": " + err.Error()))
			os.Exit(1)
		}

		var login struct {
			Token string `json:"token"`
		}
		creds := map[string]string{"email": owner.Email, "password": owner.Password}
		if err := postJSON(client, "/api/v1/auth/login", "", creds, &login); err != nil {
			fmt.Println(errStyle.Render("login " + owner.Email + ": " + err.Error()))
			os.Exit(1)
		}

		for _, listing := range listingsByOwner[owner.Email] {
			if err := postJSON(client, "/api/v1/listings", login.Token, listing, nil); err != nil {
				fmt.Println(errStyle.Render("listing " + listing.Title + ": " + err.Error()))
				os.Exit(1)
			}
			fmt.Println(okStyle.Render("✓ " + listing.Title))
		}
	}

	fmt.Println(okStyle.Render("Done."))
}
