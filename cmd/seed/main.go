// Package main provides a tool to seed the database with a demo catalog.
//
// This writes a small bilingual set of authors, books, and journals so the
// public listings, admin surface, and search index have something to show.
//
// Usage:
//
//	DATA_PATH=~/Pressroom/data go run ./cmd/seed
//	DATA_PATH=~/Pressroom/data go run ./cmd/seed --drafts  # Also create draft records
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/pressroomapp/pressroom-server/internal/domain"
	"github.com/pressroomapp/pressroom-server/internal/id"
	"github.com/pressroomapp/pressroom-server/internal/store"
)

var withDrafts = flag.Bool("drafts", false, "Also create draft records for admin testing")

func main() {
	flag.Parse()

	dataPath := os.Getenv("DATA_PATH")
	if dataPath == "" {
		dataPath = os.ExpandEnv("$HOME/Pressroom/data")
	}
	dbPath := filepath.Join(dataPath, "db")

	fmt.Printf("Opening database at: %s\n", dbPath)

	s, err := store.New(dbPath, slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer s.Close()

	ctx := context.Background()
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	now := time.Now()

	// Spread creation timestamps over the past 90 days so listing order
	// (newest first) looks like an organically grown catalog.
	backdate := func(r *domain.Record) {
		created := now.AddDate(0, 0, -rng.Intn(90))
		r.CreatedAt = created
		r.UpdatedAt = created
	}

	// Authors first, so books can reference them.
	authorIDs := make(map[string]string, len(seedAuthors))
	for _, sa := range seedAuthors {
		author := &domain.Author{
			Record:        domain.Record{ID: id.MustGenerate("author")},
			Name:          sa.name,
			Bio:           sa.bio,
			PublishStatus: domain.StatusPublished,
		}
		backdate(&author.Record)

		if err := s.CreateAuthor(ctx, author); err != nil {
			log.Fatalf("Failed to create author %q: %v", sa.name, err)
		}
		authorIDs[sa.name] = author.ID
		fmt.Printf("Created author: %s (%s)\n", author.Name, author.ID)
	}

	booksCreated := 0
	for _, sb := range seedBooks {
		status := domain.StatusPublished
		if sb.draft {
			if !*withDrafts {
				continue
			}
			status = domain.StatusDraft
		}

		book := &domain.Book{
			Record:        domain.Record{ID: id.MustGenerate("book")},
			Title:         sb.title,
			Description:   sb.description,
			Lang:          sb.lang,
			AuthorID:      authorIDs[sb.author],
			AmazonLink:    sb.amazonLink,
			PublishStatus: status,
		}
		if sb.mrp > 0 {
			mrp, offer := sb.mrp, sb.offer
			book.MRPPrice = &mrp
			if offer > 0 {
				book.OfferPrice = &offer
			}
		}
		backdate(&book.Record)

		if err := s.CreateBook(ctx, book); err != nil {
			log.Fatalf("Failed to create book %q: %v", sb.title, err)
		}
		booksCreated++
		fmt.Printf("Created book: %s [%s, %s]\n", book.Title, book.Lang, status)
	}

	journalsCreated := 0
	for _, sj := range seedJournals {
		status := domain.StatusPublished
		if sj.draft {
			if !*withDrafts {
				continue
			}
			status = domain.StatusDraft
		}

		journal := &domain.Journal{
			Record:        domain.Record{ID: id.MustGenerate("journal")},
			Title:         sj.title,
			Description:   sj.description,
			Lang:          sj.lang,
			Month:         sj.month,
			Year:          sj.year,
			PublishStatus: status,
		}
		backdate(&journal.Record)

		if err := s.CreateJournal(ctx, journal); err != nil {
			log.Fatalf("Failed to create journal %q: %v", sj.title, err)
		}
		journalsCreated++
		fmt.Printf("Created journal: %s %s %d [%s]\n", journal.Title, journal.Month, journal.Year, status)
	}

	fmt.Printf("\nSeeding complete: %d authors, %d books, %d journals\n",
		len(seedAuthors), booksCreated, journalsCreated)
	fmt.Println("The search index rebuilds on the next server start.")
}

type seedAuthor struct {
	name string
	bio  string
}

type seedBook struct {
	title       string
	description string
	author      string
	lang        domain.Language
	mrp         float64
	offer       float64
	amazonLink  string
	draft       bool
}

type seedJournal struct {
	title       string
	description string
	lang        domain.Language
	month       string
	year        int
	draft       bool
}

var seedAuthors = []seedAuthor{
	{
		name: "Kalki Krishnamurthy",
		bio:  "Journalist and novelist best known for sweeping historical fiction serialized in weekly magazines.",
	},
	{
		name: "Sujatha Rangarajan",
		bio:  "Engineer turned writer who brought science fiction and crisp short prose to Tamil readers.",
	},
	{
		name: "Ashokamitran",
		bio:  "Chronicler of ordinary middle-class life, with a spare style honed over five decades.",
	},
	{
		name: "Perumal Murugan",
		bio:  "Novelist and scholar of Kongu Nadu folklore, writing in both Tamil and translation.",
	},
}

var seedBooks = []seedBook{
	{
		title:       "Ponniyin Selvan: The First Flood",
		description: "The opening volume of the Chola epic, following Vandiyathevan down the Kaveri.",
		author:      "Kalki Krishnamurthy",
		lang:        domain.LanguageEnglish,
		mrp:         599, offer: 449,
		amazonLink: "https://www.amazon.in/dp/B00PONNIYIN1",
	},
	{
		title:       "பொன்னியின் செல்வன்: புது வெள்ளம்",
		description: "சோழப் பேரரசின் வரலாற்றுப் புதினம், முதல் பாகம்.",
		author:      "Kalki Krishnamurthy",
		lang:        domain.LanguageTamil,
		mrp:         499, offer: 399,
	},
	{
		title:       "En Iniya Iyanthira",
		description: "A dystopian thriller set in a surveillance state, told through a robotic dog's eyes.",
		author:      "Sujatha Rangarajan",
		lang:        domain.LanguageEnglish,
		mrp:         350, offer: 299,
		amazonLink: "https://www.amazon.in/dp/B00INIYAIYA1",
	},
	{
		title:       "கணையாழியின் கனவுகள்",
		description: "சிறுகதைத் தொகுப்பு.",
		author:      "Sujatha Rangarajan",
		lang:        domain.LanguageTamil,
		mrp:         275,
	},
	{
		title:       "The 18th Parallel",
		description: "A coming-of-age novel set in Secunderabad in the years before independence.",
		author:      "Ashokamitran",
		lang:        domain.LanguageEnglish,
		mrp:         425, offer: 340,
	},
	{
		title:       "One Part Woman",
		description: "A childless couple navigates faith, family pressure, and an ancient festival rite.",
		author:      "Perumal Murugan",
		lang:        domain.LanguageEnglish,
		mrp:         399, offer: 299,
		amazonLink: "https://www.amazon.in/dp/B00ONEPARTW1",
	},
	{
		title:       "பூக்குழி",
		description: "சாதி மறுப்புத் திருமணத்தின் விளைவுகளைப் பேசும் புதினம்.",
		author:      "Perumal Murugan",
		lang:        domain.LanguageTamil,
		mrp:         320, offer: 256,
	},
	{
		title:       "Untitled Memoir Draft",
		description: "Working manuscript, not yet announced.",
		author:      "Ashokamitran",
		lang:        domain.LanguageEnglish,
		draft:       true,
	},
}

var seedJournals = []seedJournal{
	{
		title:       "Pressroom Quarterly",
		description: "Essays and long-form criticism.",
		lang:        domain.LanguageEnglish,
		month:       "January",
		year:        2026,
	},
	{
		title:       "Pressroom Quarterly",
		description: "Essays and long-form criticism.",
		lang:        domain.LanguageEnglish,
		month:       "April",
		year:        2026,
	},
	{
		title:       "இலக்கியச் சோலை",
		description: "மாத இதழ்: கவிதை, கட்டுரை, மதிப்புரை.",
		lang:        domain.LanguageTamil,
		month:       "மார்ச்",
		year:        2026,
	},
	{
		title:       "இலக்கியச் சோலை",
		description: "மாத இதழ்: கவிதை, கட்டுரை, மதிப்புரை.",
		lang:        domain.LanguageTamil,
		month:       "ஏப்ரல்",
		year:        2026,
	},
	{
		title:       "Pressroom Quarterly",
		description: "July issue, in layout.",
		lang:        domain.LanguageEnglish,
		month:       "July",
		year:        2026,
		draft:       true,
	},
}
