package delivery

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/personality-quiz/internal/fallback"
	"github.com/jonathan/personality-quiz/internal/types"
)

func TestRenderReport_Structure(t *testing.T) {
	analysis := fallback.Recommend(types.CategoryAnalytical, types.CategoryCreative, types.UserProfile{})
	profile := types.UserProfile{Name: "Ada Lovelace", Age: 30, Email: "ada@example.com"}

	html, err := RenderReport(&analysis, profile)
	require.NoError(t, err)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)

	assert.Equal(t, "Your Personality Profile", doc.Find("h1").Text())
	assert.Contains(t, doc.Find(".subtitle").Text(), "Ada Lovelace")
	assert.Equal(t, analysis.PersonalityType, doc.Find(".personality-type").Text())
	assert.Equal(t, analysis.Description, doc.Find(".description").Text())
	assert.Contains(t, doc.Find(".summary").Text(), "analytical")

	assert.Equal(t, types.ListArity, doc.Find("#strengths li").Length())
	assert.Equal(t, types.ListArity, doc.Find("#careers .item").Length())
	assert.Equal(t, types.ListArity, doc.Find("#books .item").Length())
	assert.Equal(t, types.ListArity, doc.Find("#courses .item").Length())

	firstCareer := doc.Find("#careers .item").First()
	assert.Equal(t, analysis.CareerPaths[0].Title, firstCareer.Find("strong").Text())
	assert.Equal(t, analysis.CareerPaths[0].WhyGoodFit, firstCareer.Find(".why").Text())
}

func TestRenderReport_EscapesUserContent(t *testing.T) {
	analysis := fallback.Recommend(types.CategoryCreative, types.CategoryCreative, types.UserProfile{})
	profile := types.UserProfile{Name: `<script>alert("x")</script>`}

	html, err := RenderReport(&analysis, profile)
	require.NoError(t, err)

	assert.NotContains(t, html, `<script>alert`)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	assert.Contains(t, doc.Find(".subtitle").Text(), `<script>alert("x")</script>`)
}
