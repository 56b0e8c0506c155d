package assets

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"hash"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/hashicorp/go-multierror"
	"github.com/robotomize/kopeck/internal/hashio"
	"github.com/robotomize/kopeck/internal/logging"
	"github.com/sethvargo/go-retry"
	"golang.org/x/net/html"
)

const (
	CurrencyCodesFile = "currency_codes.xml"
	CurrencyNamesFile = "currency_names.json"
)

const (
	DefaultRequestTimeout = 30 * time.Second
	DefaultRetryNum       = 2
	DefaultRetryDuration  = 5 * time.Second
)

var (
	// DefaultISOPageURL is the SIX page linking the current ISO 4217 list one
	DefaultISOPageURL = url.URL{
		Scheme: "https",
		Host:   "www.six-group.com",
		Path:   "/en/products-services/financial-information/data-standards.html",
	}
	// DefaultISOListURL is used when the link can not be found on DefaultISOPageURL
	DefaultISOListURL = url.URL{
		Scheme: "https",
		Host:   "www.six-group.com",
		Path:   "/dam/download/financial-information/data-center/iso-currrency/lists/list-one.xml",
	}
	DefaultCLDRURL = url.URL{
		Scheme: "https",
		Host:   "raw.githubusercontent.com",
		Path:   "/unicode-org/cldr-json/main/cldr-json/cldr-numbers-modern/main/en-001/currencies.json",
	}
)

var ErrHashingContentEqual = errors.New("hash of the fetching file is equivalent to the previous version")

var errLinkNotFound = errors.New("iso list link not found")

var isoListRe = regexp.MustCompile(`(?i)list[-_]one\.xml(\?.*)?$`)

type Options struct {
	RetryNum       uint64
	RetryDuration  time.Duration
	RequestTimeout time.Duration
}

type Option func(*Syncer)

// WithRetryNum set number of repeated requests for download errors
func WithRetryNum(n uint64) Option {
	return func(s *Syncer) {
		s.opts.RetryNum = n
	}
}

// WithRetryDuration constant retry backoff
func WithRetryDuration(t time.Duration) Option {
	return func(s *Syncer) {
		s.opts.RetryDuration = t
	}
}

// WithRequestTimeout set a timeout for every download including its retries
func WithRequestTimeout(t time.Duration) Option {
	return func(s *Syncer) {
		s.opts.RequestTimeout = t
	}
}

// WithHasher set the hash used to detect unchanged assets
func WithHasher(hasherFunc func() hash.Hash) Option {
	return func(s *Syncer) {
		s.hasherFunc = hasherFunc
	}
}

// WithSources overrides the ISO page, the fallback ISO list and the CLDR document locations
func WithSources(isoPage, isoList, cldr url.URL) Option {
	return func(s *Syncer) {
		s.isoPageURL = isoPage
		s.isoListURL = isoList
		s.cldrURL = cldr
	}
}

// NewSyncer return Syncer downloading assets with fetcher
func NewSyncer(fetcher Fetcher, opts ...Option) *Syncer {
	s := &Syncer{
		fetcher: fetcher,
		opts: Options{
			RetryNum:       DefaultRetryNum,
			RetryDuration:  DefaultRetryDuration,
			RequestTimeout: DefaultRequestTimeout,
		},
		hasherFunc: hashio.MD5(),
		isoPageURL: DefaultISOPageURL,
		isoListURL: DefaultISOListURL,
		cldrURL:    DefaultCLDRURL,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Syncer refreshes the ISO 4217 and CLDR documents the registry generator reads
type Syncer struct {
	fetcher    Fetcher
	opts       Options
	hasherFunc func() hash.Hash

	isoPageURL url.URL
	isoListURL url.URL
	cldrURL    url.URL
}

// Sync downloads both assets into dir concurrently. Assets whose content did not change
// are not rewritten and are reported with ErrHashingContentEqual
func (s *Syncer) Sync(ctx context.Context, dir string) error {
	var multiErr multierror.Group

	isoURL := s.ResolveISOURL(ctx)

	multiErr.Go(func() error {
		if err := s.sync(ctx, isoURL, filepath.Join(dir, CurrencyCodesFile)); err != nil {
			return fmt.Errorf("sync: %w", err)
		}

		return nil
	})

	multiErr.Go(func() error {
		if err := s.sync(ctx, s.cldrURL, filepath.Join(dir, CurrencyNamesFile)); err != nil {
			return fmt.Errorf("sync: %w", err)
		}

		return nil
	})

	if err := multiErr.Wait(); err != nil {
		return fmt.Errorf("syncing error: %w", err)
	}

	return nil
}

// ResolveISOURL looks up the link to the ISO list on the SIX page. The published location changes
// from time to time, the well-known URL is returned when the page can not be used
func (s *Syncer) ResolveISOURL(ctx context.Context) url.URL {
	logger := logging.FromContext(ctx)

	page, err := s.fetch(ctx, s.isoPageURL)
	if err != nil {
		logger.Printf("warning: iso page: %v, using %s", err, s.isoListURL.String())
		return s.isoListURL
	}

	u, err := findISOLink(page, s.isoPageURL)
	if err != nil {
		logger.Printf("warning: %v, using %s", err, s.isoListURL.String())
		return s.isoListURL
	}

	return u
}

func (s *Syncer) sync(ctx context.Context, u url.URL, fileName string) error {
	var mode os.FileMode = 0o600

	body, err := s.fetch(ctx, u)
	if err != nil {
		return err
	}

	same, err := hashio.SameContent(fileName, body, s.hasherFunc)
	if err != nil {
		return fmt.Errorf("hashing file content: %w", err)
	}

	if same {
		return fmt.Errorf("%w: %s", ErrHashingContentEqual, fileName)
	}

	info, err := os.Stat(fileName)
	if err == nil {
		mode = info.Mode()
	}

	if err := os.WriteFile(fileName, body, mode); err != nil {
		return fmt.Errorf("write file: %w", err)
	}

	logging.FromContext(ctx).Printf("%s updated from %s", fileName, u.String())

	return nil
}

func (s *Syncer) fetch(ctx context.Context, u url.URL) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, s.opts.RequestTimeout)
	defer cancel()

	b, err := retry.NewConstant(s.opts.RetryDuration)
	if err != nil {
		return nil, fmt.Errorf("retry backoff: %w", err)
	}

	b = retry.WithMaxRetries(s.opts.RetryNum, b)

	var body []byte
	if err := retry.Do(ctx, b, func(ctx context.Context) error {
		got, err := s.fetcher.Get(ctx, u)
		if err != nil {
			return retry.RetryableError(fmt.Errorf("fetch %s: %w", u.String(), err))
		}

		body = got

		return nil
	}); err != nil {
		return nil, err
	}

	return body, nil
}

func findISOLink(page []byte, base url.URL) (url.URL, error) {
	root, err := html.Parse(bytes.NewReader(page))
	if err != nil {
		return url.URL{}, fmt.Errorf("html parse: %w", err)
	}

	doc := goquery.NewDocumentFromNode(root)

	var found *url.URL
	doc.Find("a[href]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		href, _ := sel.Attr("href")
		href = strings.TrimSpace(href)
		if !isoListRe.MatchString(href) {
			return true
		}

		ref, err := url.Parse(href)
		if err != nil {
			return true
		}

		found = base.ResolveReference(ref)

		return false
	})

	if found == nil {
		return url.URL{}, errLinkNotFound
	}

	return *found, nil
}
