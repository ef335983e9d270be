package propfin

import (
	"bufio"
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httputil"
	"net/url"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/PaesslerAG/jsonpath"
)

const ledger_api_key = "LEDGER_API_KEY"

var ledgerApiFlag = flag.String("ledger-api-key", "", "Accounting export API key.\n If missing it will read the environment variable \""+ledger_api_key+"\".")

func ledgerApiKey() string {
	// If the flag is not set, we try to read it from the environment variable.
	if *ledgerApiFlag == "" {
		*ledgerApiFlag = os.Getenv(ledger_api_key)
	}
	return *ledgerApiFlag
}

// diskCache implements a simple disk cache for HTTP responses
type diskCache struct {
	base http.RoundTripper
}

func (c *diskCache) RoundTrip(req *http.Request) (resp *http.Response, err error) {
	// diskcache uses a unique key per day, so the local tmp expires daily;
	// re-renders within a day never refetch the same export.
	key := fmt.Sprintf("%s %s %s", time.Now().Format("2006-01-02"), req.Method, req.URL.String())
	key = fmt.Sprintf("%x", sha1.Sum([]byte(key)))

	cachedResp, err := c.get(key, req)
	if err == nil { // Cache hit
		return cachedResp, nil
	}

	resp, err = c.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	log.Printf("%v %v/%v %v", resp.Request.Method, resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	if resp.StatusCode >= 300 {
		return resp, nil
	}

	if err := c.put(key, resp); err != nil {
		log.Printf("cache write err (ignored): %v\n", err)
	}
	return resp, nil
}

// get retrieves a cached response from disk
func (c *diskCache) get(key string, req *http.Request) (resp *http.Response, err error) {
	file := filepath.Join(os.TempDir(), key)
	content, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	return http.ReadResponse(bufio.NewReader(bytes.NewBuffer(content)), req)
}

// put stores a response to disk cache
func (c *diskCache) put(key string, resp *http.Response) (err error) {
	file := filepath.Join(os.TempDir(), key)

	content, err := httputil.DumpResponse(resp, true)
	if err != nil {
		return err
	}

	f, err := os.Create(file)
	if err != nil {
		return err
	}

	_, err = f.Write(content)
	f.Close()
	return err
}

// daily returns a client with a disk cache that expires every day.
func daily() *http.Client {
	client := new(http.Client)
	client.Transport = &diskCache{http.DefaultTransport}
	return client
}

// jwget performs an HTTP GET and unmarshals the JSON response into data.
//
// The export service wraps its row arrays in inconsistent envelopes
// depending on the report; 'path' is the jsonpath of the payload inside the
// envelope. When the path does not resolve the body is assumed to be the
// bare payload, which is what the older report endpoints return.
func jwget(ctx context.Context, client *http.Client, addr, path string, data any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return err
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != 200 {
		return fmt.Errorf("cannot http GET %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	var buf bytes.Buffer
	if _, err = io.Copy(&buf, resp.Body); err != nil {
		return err
	}

	if path == "" {
		return json.Unmarshal(buf.Bytes(), data)
	}

	var jobj any
	if err := json.Unmarshal(buf.Bytes(), &jobj); err != nil {
		return err
	}
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		// no envelope: the body is the payload itself
		return json.Unmarshal(buf.Bytes(), data)
	}
	raw, err := json.Marshal(jval)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, data)
}

// ExportAPI is the client for the accounting-ledger export service, the
// authoritative source of line items, month-sliced T12 rows and the
// investments property table.
type ExportAPI struct {
	BaseURL string
	Client  *http.Client // defaults to the daily disk-cached client
	APIKey  string       // defaults to the -ledger-api-key flag / env var
}

func (a *ExportAPI) client() *http.Client {
	if a.Client != nil {
		return a.Client
	}
	return daily()
}

func (a *ExportAPI) get(ctx context.Context, p string, q url.Values, path string, data any) error {
	key := a.APIKey
	if key == "" {
		key = ledgerApiKey()
	}
	q.Set("api_token", key)
	addr := fmt.Sprintf("%s%s?%s", a.BaseURL, p, q.Encode())
	return jwget(ctx, a.client(), addr, path, data)
}

// LineItems fetches the GL rows of one report ("cash_flow" or
// "balance_sheet") for a property and period.
func (a *ExportAPI) LineItems(ctx context.Context, report, propertyID string, period Month) ([]LedgerLineItem, error) {
	q := url.Values{}
	q.Set("property", propertyID)
	q.Set("period", period.String())
	var items []LedgerLineItem
	if err := a.get(ctx, "/reports/"+url.PathEscape(report), q, "$.results", &items); err != nil {
		return nil, fmt.Errorf("fetching %s for %s %s: %w", report, propertyID, period, err)
	}
	return items, nil
}

// T12Rows fetches the month-sliced rows for the twelve months ending at
// 'end'.
func (a *ExportAPI) T12Rows(ctx context.Context, propertyID string, end Month) ([]T12Row, error) {
	q := url.Values{}
	q.Set("property", propertyID)
	q.Set("to", end.String())
	var rows []T12Row
	if err := a.get(ctx, "/reports/twelve_month", q, "$.results", &rows); err != nil {
		return nil, fmt.Errorf("fetching t12 for %s: %w", propertyID, err)
	}
	return rows, nil
}

// Investments fetches the property records table.
func (a *ExportAPI) Investments(ctx context.Context) ([]PropertyRecord, error) {
	var recs []PropertyRecord
	if err := a.get(ctx, "/investments", url.Values{}, "$.results", &recs); err != nil {
		return nil, fmt.Errorf("fetching investments: %w", err)
	}
	return recs, nil
}

// LineItemPeriods fetches the current and previous period concurrently.
// The two fetches are independently failable: a failed current period is an
// error, a failed previous period only degrades the result (nil previous,
// logged), so a variance comparison that cannot be made never blocks
// rendering the current period.
func (a *ExportAPI) LineItemPeriods(ctx context.Context, report, propertyID string, current Month) (cur, prev []LedgerLineItem, err error) {
	var wg sync.WaitGroup
	var curErr, prevErr error

	wg.Add(2)
	go func() {
		defer wg.Done()
		cur, curErr = a.LineItems(ctx, report, propertyID, current)
	}()
	go func() {
		defer wg.Done()
		prev, prevErr = a.LineItems(ctx, report, propertyID, current.Add(-1))
	}()
	wg.Wait()

	if curErr != nil {
		return nil, nil, curErr
	}
	if prevErr != nil {
		log.Printf("previous period unavailable, no comparison: %v", prevErr)
		prev = nil
	}
	return cur, prev, nil
}
