package main

import (
	"fmt"
	"math/rand"
	"time"
)

type seedBook struct {
	Title       string
	Description string
}

type seedAuthor struct {
	Name      string
	Birthdate time.Time
	Books     []seedBook
}

var (
	firstNames = []string{"Ada", "Italo", "Ursula", "Jorge", "Toni", "Haruki", "Chinua", "Virginia", "Gabriel", "Octavia"}
	lastNames  = []string{"Lovelace", "Calvino", "Le Guin", "Borges", "Morrison", "Murakami", "Achebe", "Woolf", "Marquez", "Butler"}
	words      = []string{
		"Adventure", "Mystery", "Journey", "Discovery", "Secrets", "Dreams", "Hope",
		"Love", "War", "Peace", "Science", "Nature", "Technology", "History", "Future",
		"Past", "Present", "Reality", "Imagination", "Wisdom", "Life", "Death",
		"Light", "Darkness", "World", "Universe", "Time", "Space", "Mind", "Soul",
	}
)

func generate(rng *rand.Rand, authors, booksPer int) []seedAuthor {
	out := make([]seedAuthor, 0, authors)
	for i := 0; i < authors; i++ {
		a := seedAuthor{
			Name: fmt.Sprintf("%s %s %d", pick(rng, firstNames), pick(rng, lastNames), i+1),
			Birthdate: time.Date(1900+rng.Intn(100), time.Month(1+rng.Intn(12)), 1+rng.Intn(28),
				0, 0, 0, 0, time.UTC),
		}
		for j := 0; j < booksPer; j++ {
			topic := pick(rng, words)
			a.Books = append(a.Books, seedBook{
				Title:       fmt.Sprintf("Book Title %d-%d - %s", i+1, j+1, pick(rng, words)),
				Description: fmt.Sprintf("This is a book about %s. It explores the fundamental concepts and provides insights into the subject matter.", topic),
			})
		}
		out = append(out, a)
	}
	return out
}

func pick(rng *rand.Rand, from []string) string {
	return from[rng.Intn(len(from))]
}
