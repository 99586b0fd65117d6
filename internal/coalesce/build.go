package coalesce

import (
	"crypto/sha256"
	"encoding/hex"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/ryanrhee/snowboard-db-sub000/internal/boardid"
	"github.com/ryanrhee/snowboard-db-sub000/internal/model"
	"github.com/ryanrhee/snowboard-db-sub000/internal/normalize"
)

// manufacturerInfo holds the last-seen MSRP/URL from a manufacturer:
// source for a given boardKey (spec §4.5 Phase C).
type manufacturerInfo struct {
	msrpUsd         *float64
	manufacturerURL string
}

// SpecSourceRows runs Phase C for a single (boardKey, ScrapedBoard)
// pair: normalized-field rows, extras rows, and derived terrain rows.
// Exported so the review-sites pipeline mode can write provenance for
// a single enriched record without re-running identification.
func SpecSourceRows(boardKey string, sb model.ScrapedBoard, now time.Time) []model.SpecSourceRow {
	var rows []model.SpecSourceRow
	add := func(field, value string) {
		if value == "" {
			return
		}
		rows = append(rows, model.SpecSourceRow{
			BoardKey:  boardKey,
			Field:     field,
			Source:    sb.Source,
			Value:     value,
			SourceURL: sb.SourceURL,
			Timestamp: now,
		})
	}

	if f := normalize.Flex(sb.Flex); f != nil {
		add("flex", strconv.Itoa(*f))
	}
	profile := normalize.Profile(sb.Profile)
	add("profile", profile)
	shape := normalize.Shape(sb.Shape)
	add("shape", shape)
	category := normalize.Category(sb.Category, sb.Description)
	add("category", category)
	if sb.AbilityLevel != "" {
		min, max := normalize.AbilityRange(sb.AbilityLevel)
		if min != "" {
			add("abilityLevel", min+".."+max)
		}
	}

	extraKeys := make([]string, 0, len(sb.Extras))
	for k := range sb.Extras {
		extraKeys = append(extraKeys, k)
	}
	sort.Strings(extraKeys)

	hasTerrain := false
	for _, k := range extraKeys {
		field := k
		if strings.EqualFold(k, "ability level") {
			field = "abilityLevel"
		}
		if strings.HasPrefix(strings.ToLower(k), "terrain_") {
			hasTerrain = true
		}
		add(field, sb.Extras[k])
	}

	if !hasTerrain && category != "" {
		if terrain, ok := terrainByCategory[category]; ok {
			add("terrain_piste", strconv.Itoa(terrain.Piste))
			add("terrain_powder", strconv.Itoa(terrain.Powder))
			add("terrain_park", strconv.Itoa(terrain.Park))
			add("terrain_freeride", strconv.Itoa(terrain.Freeride))
			add("terrain_freestyle", strconv.Itoa(terrain.Freestyle))
		}
	}

	return rows
}

func manufacturerInfoFor(sb model.ScrapedBoard) (manufacturerInfo, bool) {
	if !strings.HasPrefix(sb.Source, "manufacturer:") {
		return manufacturerInfo{}, false
	}
	return manufacturerInfo{msrpUsd: sb.MSRPUsd, manufacturerURL: sb.SourceURL}, true
}

// listingID hashes (retailer, url, lengthCm) down to a 16-character
// hex id (spec §4.5 Phase D: sha256(...)[0..16]).
func listingID(retailer, url string, lengthCm *float64) string {
	length := ""
	if lengthCm != nil {
		length = strconv.FormatFloat(*lengthCm, 'f', -1, 64)
	}
	sum := sha256.Sum256([]byte(retailer + "|" + url + "|" + length))
	return hex.EncodeToString(sum[:])[:16]
}

func retailerFromSource(source string) string {
	if rest, ok := strings.CutPrefix(source, "retailer:"); ok {
		return rest
	}
	return source
}

func convertToUSD(amount *float64, currency string, rates map[string]float64) *float64 {
	if amount == nil {
		return nil
	}
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == "" || currency == "USD" {
		v := *amount
		return &v
	}
	rate, ok := rates[currency]
	if !ok {
		return nil
	}
	v := *amount * rate
	return &v
}

func discountPercent(original, sale *float64) *int {
	if original == nil || sale == nil || *original <= *sale || *original == 0 {
		return nil
	}
	pct := int(math.Round((*original - *sale) / *original * 100))
	return &pct
}

var availabilitySubstrings = []struct {
	token string
	value model.Availability
}{
	{"out of stock", model.AvailabilityOutOfStock},
	{"out_of_stock", model.AvailabilityOutOfStock},
	{"sold out", model.AvailabilityOutOfStock},
	{"unavailable", model.AvailabilityOutOfStock},
	{"low stock", model.AvailabilityLowStock},
	{"low_stock", model.AvailabilityLowStock},
	{"limited", model.AvailabilityLowStock},
	{"few left", model.AvailabilityLowStock},
	{"in stock", model.AvailabilityInStock},
	{"in_stock", model.AvailabilityInStock},
	{"available", model.AvailabilityInStock},
}

func normalizeAvailability(raw string) model.Availability {
	s := strings.ToLower(strings.TrimSpace(raw))
	for _, candidate := range availabilitySubstrings {
		if strings.Contains(s, candidate.token) {
			return candidate.value
		}
	}
	return model.AvailabilityUnknown
}

// buildListings runs Phase D for every ScrapedListing attached to a
// scraped record, deriving condition/gender via a transient
// BoardIdentifier over the listing's own URL and hints.
func buildListings(boardKey string, sb model.ScrapedBoard, rates map[string]float64, runID string) []model.Listing {
	listings := make([]model.Listing, 0, len(sb.Listings))
	for _, sl := range sb.Listings {
		transient := boardid.New(model.ScrapedBoard{
			BrandRaw:      sb.BrandRaw,
			RawModel:      sb.RawModel,
			SourceURL:     sl.URL,
			Gender:        sl.Gender,
			ConditionHint: sl.Condition,
		})

		listings = append(listings, model.Listing{
			ID:              listingID(retailerFromSource(sb.Source), sl.URL, sl.LengthCm),
			BoardKey:        boardKey,
			RunID:           runID,
			Retailer:        retailerFromSource(sb.Source),
			Region:          sl.Region,
			URL:             sl.URL,
			Currency:        sl.Currency,
			OriginalPrice:   sl.OriginalPrice,
			SalePrice:       sl.SalePrice,
			SalePriceUsd:    convertToUSD(sl.SalePrice, sl.Currency, rates),
			DiscountPercent: discountPercent(sl.OriginalPrice, sl.SalePrice),
			LengthCm:        sl.LengthCm,
			WidthMm:         sl.WidthMm,
			Availability:    normalizeAvailability(sl.Availability),
			Condition:       model.Condition(transient.Condition()),
			Gender:          model.Gender(transient.Gender()),
			StockCount:      sl.StockCount,
			ScrapedAt:       sl.ScrapedAt,
		})
	}
	return listings
}
