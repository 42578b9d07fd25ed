// internal/parser/parser.go

// Package parser turns one raw source document (RSS feed or HTML listing
// page) into normalized listings, in document order.
package parser

import (
	"fmt"
	"html"
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"

	"github.com/ps-vitor/ss-monitor/internal/domain"
)

// adPath is the URL path fragment that identifies an individual ad page;
// anchors not matching it belong to header and separator rows.
const adPath = "/msg/"

type Parser struct {
	feed *gofeed.Parser
}

func New() *Parser {
	return &Parser{feed: gofeed.NewParser()}
}

// Parse dispatches on the source's document format. An unparseable document
// is an error; a document that parses but matches no listings yields an
// empty slice.
func (p *Parser) Parse(raw string, source domain.Location) ([]domain.Listing, error) {
	switch source.Format {
	case domain.FormatRSS:
		return p.parseRSS(raw)
	case domain.FormatHTML:
		return p.parseHTML(raw, source.URL, "tr[id^='tr_']", "td.msga2-o")
	case domain.FormatHTMLMobile:
		return p.parseHTML(raw, source.URL, "div.d1", ".msga2-o")
	default:
		return nil, fmt.Errorf("unknown source format %q", source.Format)
	}
}

func (p *Parser) parseRSS(raw string) ([]domain.Listing, error) {
	feed, err := p.feed.ParseString(raw)
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}

	listings := make([]domain.Listing, 0, len(feed.Items))
	for _, item := range feed.Items {
		l := domain.Listing{
			Title:       normalizeText(item.Title),
			Link:        strings.TrimSpace(item.Link),
			Description: normalizeText(item.Description),
		}
		l.Key = firstNonEmpty(l.Link, item.GUID, l.Title)
		if l.Key == "" {
			continue
		}
		listings = append(listings, l)
	}
	return listings, nil
}

// parseHTML walks the listing containers of a server-rendered page. Desktop
// pages lay ads out as table rows, the mobile site as divs; both wrap an
// anchor pointing at the ad page and a price-bearing cell.
func (p *Parser) parseHTML(raw, sourceURL, rowSel, priceSel string) ([]domain.Listing, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	base, err := url.Parse(sourceURL)
	if err != nil {
		return nil, fmt.Errorf("parse source url: %w", err)
	}

	listings := make([]domain.Listing, 0)
	doc.Find(rowSel).Each(func(_ int, row *goquery.Selection) {
		anchor := row.Find("a").FilterFunction(func(_ int, a *goquery.Selection) bool {
			href, _ := a.Attr("href")
			return strings.Contains(href, adPath)
		}).First()
		if anchor.Length() == 0 {
			return // header or separator row
		}

		href, _ := anchor.Attr("href")

		priceText := row.Find(priceSel).Last().Text()
		if priceText == "" {
			priceText = row.Find("td").Last().Text()
		}
		if priceText == "" {
			// Mobile containers have no cells; take the container's own
			// text around the anchor.
			rest := row.Clone()
			rest.Find("a").Remove()
			priceText = rest.Text()
		}

		// The price cell rides in Description so the extractor sees it
		// next to the title.
		l := domain.Listing{
			Title:       normalizeText(anchor.Text()),
			Link:        resolveLink(base, href),
			Description: normalizeText(priceText),
		}
		l.Key = firstNonEmpty(l.Link, l.Title)
		if l.Key == "" {
			return
		}
		listings = append(listings, l)
	})
	return listings, nil
}

func resolveLink(base *url.URL, href string) string {
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return ""
	}
	return base.ResolveReference(ref).String()
}

var (
	tagRe   = regexp.MustCompile(`<[^>]*>`)
	spaceRe = regexp.MustCompile(`\s+`)
)

// normalizeText unescapes HTML entities, drops embedded markup and collapses
// runs of whitespace.
func normalizeText(s string) string {
	s = html.UnescapeString(s)
	s = tagRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(spaceRe.ReplaceAllString(s, " "))
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
