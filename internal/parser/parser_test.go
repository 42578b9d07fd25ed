package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ps-vitor/ss-monitor/internal/domain"
	"github.com/ps-vitor/ss-monitor/internal/parser"
)

const rssFixture = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>SS.LV - Mājas, vasarnīcas</title>
    <item>
      <title>Māja Mārupē 295 000 &#8364;</title>
      <link>https://www.ss.lv/msg/lv/real-estate/homes-summer-residences/riga-region/marupes-pag/abcde.html</link>
      <description>&lt;b&gt;Plaša māja&lt;/b&gt; ar  lielu   zemi</description>
      <guid>abcde</guid>
    </item>
    <item>
      <title>Vasarnīca Bieriņos</title>
      <guid>fghij</guid>
    </item>
    <item>
      <description>ne nosaukuma, ne saites</description>
    </item>
  </channel>
</rss>`

const emptyFeedFixture = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Tukša sadaļa</title>
  </channel>
</rss>`

const htmlFixture = `<html><body>
<table>
  <tr id="head_line"><td>Sludinājumi</td></tr>
  <tr id="tr_51790436">
    <td class="msga2"><a id="im51790436" class="am" href="/msg/lv/real-estate/homes-summer-residences/riga/agenskalns/example.html">Pārdod  māju
      Āgenskalnā</a></td>
    <td class="msga2-o pp6">120 000 €</td>
  </tr>
  <tr id="tr_bnr_777"><td colspan="5">reklāma</td></tr>
</table>
</body></html>`

const mobileFixture = `<html><body>
<div class="d1">
  <a href="/msg/lv/real-estate/homes-summer-residences/riga/bierini/xyz.html">Māja Bieriņos</a>
  <span class="msga2-o">95 000 €</span>
</div>
<div class="d1">
  <a href="/msg/lv/real-estate/homes-summer-residences/riga/bierini/plain.html">Māja bez cenas klases</a>
  79 000 €
</div>
<div class="d1"><span>starpposma rinda</span></div>
</body></html>`

func rssLocation() domain.Location {
	return domain.Location{
		Name:   "Mārupes pag.",
		URL:    "https://www.ss.lv/lv/real-estate/homes-summer-residences/riga-region/marupes-pag/sell/rss/",
		Format: domain.FormatRSS,
	}
}

func TestParseRSS(t *testing.T) {
	p := parser.New()

	listings, err := p.Parse(rssFixture, rssLocation())
	require.NoError(t, err)
	require.Len(t, listings, 2)

	first := listings[0]
	assert.Equal(t, "Māja Mārupē 295 000 €", first.Title)
	assert.Equal(t, "https://www.ss.lv/msg/lv/real-estate/homes-summer-residences/riga-region/marupes-pag/abcde.html", first.Link)
	assert.Equal(t, "Plaša māja ar lielu zemi", first.Description)
	assert.Equal(t, first.Link, first.Key, "link wins as identity key")

	second := listings[1]
	assert.Equal(t, "Vasarnīca Bieriņos", second.Title)
	assert.Empty(t, second.Link)
	assert.Equal(t, "fghij", second.Key, "guid is the fallback key when the link is absent")
}

func TestParseRSSEmptyFeed(t *testing.T) {
	p := parser.New()

	listings, err := p.Parse(emptyFeedFixture, rssLocation())
	require.NoError(t, err)
	assert.Empty(t, listings)
}

func TestParseRSSMalformed(t *testing.T) {
	p := parser.New()

	_, err := p.Parse("šis nav XML", rssLocation())
	assert.Error(t, err)
}

func TestParseHTMLDesktop(t *testing.T) {
	p := parser.New()
	loc := domain.Location{
		Name:   "Āgenskalns",
		URL:    "https://www.ss.lv/lv/real-estate/homes-summer-residences/riga/agenskalns/sell/",
		Format: domain.FormatHTML,
	}

	listings, err := p.Parse(htmlFixture, loc)
	require.NoError(t, err)
	require.Len(t, listings, 1, "banner and header rows are skipped")

	l := listings[0]
	assert.Equal(t, "Pārdod māju Āgenskalnā", l.Title)
	assert.Equal(t, "https://www.ss.lv/msg/lv/real-estate/homes-summer-residences/riga/agenskalns/example.html", l.Link)
	assert.Equal(t, "120 000 €", l.Description)
	assert.Equal(t, l.Link, l.Key)
}

func TestParseHTMLMobile(t *testing.T) {
	p := parser.New()
	loc := domain.Location{
		Name:   "Bieriņi",
		URL:    "https://m.ss.lv/lv/real-estate/homes-summer-residences/riga/bierini/sell/",
		Format: domain.FormatHTMLMobile,
	}

	listings, err := p.Parse(mobileFixture, loc)
	require.NoError(t, err)
	require.Len(t, listings, 2)

	l := listings[0]
	assert.Equal(t, "Māja Bieriņos", l.Title)
	assert.Equal(t, "https://m.ss.lv/msg/lv/real-estate/homes-summer-residences/riga/bierini/xyz.html", l.Link)
	assert.Equal(t, "95 000 €", l.Description)

	// Without a price-class element the container's own text carries the price.
	plain := listings[1]
	assert.Equal(t, "Māja bez cenas klases", plain.Title)
	assert.Equal(t, "79 000 €", plain.Description)
}

func TestParseHTMLNoListings(t *testing.T) {
	p := parser.New()
	loc := domain.Location{
		Name:   "Āgenskalns",
		URL:    "https://www.ss.lv/lv/real-estate/homes-summer-residences/riga/agenskalns/sell/",
		Format: domain.FormatHTML,
	}

	listings, err := p.Parse("<html><body><p>nekas</p></body></html>", loc)
	require.NoError(t, err)
	assert.Empty(t, listings, "a page with no matching containers is valid and empty")
}

func TestParseUnknownFormat(t *testing.T) {
	p := parser.New()

	_, err := p.Parse("", domain.Location{Name: "x", URL: "https://example.com", Format: "pdf"})
	assert.Error(t, err)
}
