package web

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"math/rand"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/f3rmion/maodou/internal/config"
	"github.com/f3rmion/maodou/internal/quotes"
	"github.com/f3rmion/maodou/internal/sample"
	"github.com/f3rmion/maodou/internal/textstats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testQuote = "毛豆测试语录"

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := NewServer(Deps{
		Config: config.Default(),
		Quotes: quotes.NewPicker([]string{testQuote}, rand.NewSource(1)),
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func parse(t *testing.T, resp *http.Response) *goquery.Document {
	t.Helper()
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	require.NoError(t, err)
	return doc
}

func value(doc *goquery.Document, key string) string {
	return strings.TrimSpace(doc.Find(`[data-key="` + key + `"]`).First().Text())
}

func TestIndex(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/")
	require.NoError(t, err)
	doc := parse(t, resp)

	assert.Equal(t, testQuote, strings.TrimSpace(doc.Find(".quote-box").Text()))
	assert.Equal(t, 1, doc.Find("textarea[name=text]").Length())
	assert.Equal(t, 1, doc.Find(`form[action="/count"]`).Length())
	assert.Equal(t, 1, doc.Find(`form[action="/example"]`).Length())
	assert.Equal(t, 1, doc.Find(`form[action="/upload"][enctype="multipart/form-data"] input[name=file]`).Length())
	assert.Equal(t, 0, doc.Find(".results").Length())

	clearForm := doc.Find(`form#clear-form[action="/"]`)
	require.Equal(t, 1, clearForm.Length())
	method, _ := clearForm.Attr("method")
	assert.Equal(t, "get", method)
	assert.Empty(t, doc.Find("textarea[name=text]").Text())
}

func TestCountLineBreaks(t *testing.T) {
	tests := []struct {
		name   string
		posted string
		typed  string
	}{
		{"crlf", "a\r\nb", "a\nb"},
		{"typed lines", "毛豆\r\n毛豆\r\n毛豆", "毛豆\n毛豆\n毛豆"},
		{"lone cr kept", "a\rb", "a\rb"},
		{"example round trip", strings.ReplaceAll(sample.Text(), "\n", "\r\n"), sample.Text()},
	}

	ts := newTestServer(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.PostForm(ts.URL+"/count", url.Values{"text": {tt.posted}})
			require.NoError(t, err)
			doc := parse(t, resp)

			want, ok := textstats.Compute(tt.typed)
			require.True(t, ok)
			for _, f := range want.Fields() {
				assert.Equal(t, strconv.Itoa(f.Value), value(doc, f.Key), f.Key)
			}
			if !strings.Contains(tt.typed, "\r") {
				assert.Equal(t, tt.typed, doc.Find("textarea[name=text]").Text())
			}
		})
	}
}

func TestCountLeadingNewline(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.PostForm(ts.URL+"/count", url.Values{"text": {"\n毛豆"}})
	require.NoError(t, err)
	doc := parse(t, resp)

	assert.Equal(t, "\n毛豆", doc.Find("textarea[name=text]").Text())
	assert.Equal(t, "2", value(doc, textstats.KeyLines))
}

func TestUnknownPath(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/nope")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCount(t *testing.T) {
	ts := newTestServer(t)

	text := "毛豆很好吃。Edamame is tasty!"
	resp, err := http.PostForm(ts.URL+"/count", url.Values{"text": {text}})
	require.NoError(t, err)
	doc := parse(t, resp)

	assert.Equal(t, text, doc.Find("textarea[name=text]").Text())
	assert.Equal(t, "5", value(doc, textstats.KeyChineseChars))
	assert.Equal(t, "3", value(doc, textstats.KeyLatinWords))
	assert.Equal(t, "2", value(doc, textstats.KeyPunctuation))
	assert.Equal(t, 1, doc.Find("progress").Length())
	assert.Contains(t, doc.Find(".density-caption").Text(), "文字密度")
	assert.Contains(t, doc.Find(".maodou-feature").Text(), "颗毛豆")

	comment := doc.Find(".comment-box")
	assert.Contains(t, comment.Text(), "中英混合")
	style, _ := comment.Attr("style")
	assert.Contains(t, style, "#c4a574")

	assert.Equal(t, len(textstats.Stats{}.Fields()), doc.Find("table.detail tr").Length())
	assert.Contains(t, doc.Find(".top-hanzi").Text(), "毛(máo)×1")
}

func TestCountEmpty(t *testing.T) {
	ts := newTestServer(t)

	for _, text := range []string{"", "   \n\t  "} {
		resp, err := http.PostForm(ts.URL+"/count", url.Values{"text": {text}})
		require.NoError(t, err)
		doc := parse(t, resp)

		assert.Equal(t, quotes.EmptyPrompt, strings.TrimSpace(doc.Find(".warning").Text()))
		assert.Equal(t, 0, doc.Find(".results").Length())
	}
}

func TestExample(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.PostForm(ts.URL+"/example", nil)
	require.NoError(t, err)
	doc := parse(t, resp)

	assert.Equal(t, sample.Text(), doc.Find("textarea[name=text]").Text())
	assert.Equal(t, quotes.ExampleLoaded, strings.TrimSpace(doc.Find(".notice").Text()))
	assert.Equal(t, 0, doc.Find(".results").Length(), "loading the example does not count it")
}

func upload(t *testing.T, ts *httptest.Server, name string, content []byte) *http.Response {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("file", name)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	resp, err := http.Post(ts.URL+"/upload", mw.FormDataContentType(), &body)
	require.NoError(t, err)
	return resp
}

func TestUpload(t *testing.T) {
	ts := newTestServer(t)

	doc := parse(t, upload(t, ts, "beans.txt", []byte("毛豆毛豆\nbeans")))

	assert.Equal(t, quotes.Loaded(10), strings.TrimSpace(doc.Find(".notice").Text()))
	assert.Equal(t, "毛豆毛豆\nbeans", doc.Find("textarea[name=text]").Text())
	assert.Equal(t, "4", value(doc, textstats.KeyChineseChars))
	assert.Equal(t, "1", value(doc, textstats.KeyLatinWords))
	assert.Equal(t, "2", value(doc, textstats.KeyLines))
}

func TestUploadInvalidUTF8(t *testing.T) {
	ts := newTestServer(t)

	doc := parse(t, upload(t, ts, "gbk.txt", []byte{0xc3, 0x28, 0xff, 0xfe}))

	assert.Equal(t, quotes.Unreadable, strings.TrimSpace(doc.Find(".error").Text()))
	assert.Equal(t, 0, doc.Find(".results").Length())
}

func TestUploadBlank(t *testing.T) {
	ts := newTestServer(t)

	doc := parse(t, upload(t, ts, "blank.txt", []byte("  \n ")))

	assert.Equal(t, quotes.EmptyPrompt, strings.TrimSpace(doc.Find(".warning").Text()))
}

func TestUploadMissingFile(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.PostForm(ts.URL+"/upload", url.Values{"text": {"x"}})
	require.NoError(t, err)
	doc := parse(t, resp)

	assert.Equal(t, quotes.Unreadable, strings.TrimSpace(doc.Find(".error").Text()))
}

func postJSON(t *testing.T, ts *httptest.Server, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(ts.URL+"/api/stats", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	return resp
}

func TestAPIStats(t *testing.T) {
	ts := newTestServer(t)

	resp := postJSON(t, ts, `{"text":"毛豆毛豆豆"}`)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var got statsResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))

	assert.Equal(t, 5, got.Stats.ChineseChars)
	assert.Equal(t, 3, got.Stats.Beans)
	assert.Equal(t, "chinese-only", got.Mix)
	assert.Equal(t, "tiny", got.Size)
	assert.Equal(t, 0.01, got.Density)
	assert.Equal(t, "🌱 纯正中文，像一盘清炒毛豆，共一小撮（5字符）", got.Comment)

	require.Len(t, got.Fields, 11)
	assert.Equal(t, textstats.KeyChineseChars, got.Fields[0].Key)
	assert.Equal(t, "中文字数 🌱", got.Fields[0].Label)

	require.NotEmpty(t, got.TopHanzi)
	assert.Equal(t, "豆", got.TopHanzi[0].Char)
	assert.Equal(t, 3, got.TopHanzi[0].Count)
}

func TestAPIStatsErrors(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		status int
		code   string
	}{
		{"empty text", `{"text":""}`, http.StatusUnprocessableEntity, "EMPTY_TEXT"},
		{"blank text", `{"text":"\n\t "}`, http.StatusUnprocessableEntity, "EMPTY_TEXT"},
		{"missing text", `{}`, http.StatusUnprocessableEntity, "EMPTY_TEXT"},
		{"malformed", `{"text":`, http.StatusBadRequest, "INVALID_REQUEST"},
		{"wrong type", `{"text":5}`, http.StatusBadRequest, "INVALID_REQUEST"},
	}

	ts := newTestServer(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postJSON(t, ts, tt.body)
			defer resp.Body.Close()
			assert.Equal(t, tt.status, resp.StatusCode)

			var got errorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
			assert.Equal(t, tt.code, got.Error.Code)
		})
	}
}

func TestAPIStatsTooLarge(t *testing.T) {
	cfg := config.Default()
	cfg.Server.MaxUploadBytes = 16
	srv := NewServer(Deps{Config: cfg, Logger: slog.New(slog.NewTextHandler(io.Discard, nil))})
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	resp := postJSON(t, ts, `{"text":"`+strings.Repeat("豆", 64)+`"}`)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusRequestEntityTooLarge, resp.StatusCode)
}

func TestAPIExample(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/example")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got statsRequest
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, sample.Text(), got.Text)
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var got map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, "ok", got["status"])
}

func TestMethodNotAllowed(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/count")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}
