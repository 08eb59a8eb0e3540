package channel_source

import (
	"context"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

type rowFetcher interface {
	GetRows(ctx context.Context, URL string) ([]map[string]string, error)
}

// ChannelSourceService resolves the channel names to watch, either from a
// static configured list or from a spreadsheet exported as csv.
type ChannelSourceService struct {
	sheetClient rowFetcher
	staticList  []string
	sheetURL    string
	headers     []string

	mu     sync.Mutex
	cached []string
}

func NewChannelSourceService(sheetClient rowFetcher, staticList []string, sheetURL string, headers []string) *ChannelSourceService {
	return &ChannelSourceService{
		sheetClient: sheetClient,
		staticList:  normalizeNames(staticList),
		sheetURL:    sheetURL,
		headers:     headers,
	}
}

// Resolve returns the current channel list. Fetch and parse failures fall
// back to the previously resolved list, an empty result is returned as is
// with a warning so the caller can keep its own last known list.
func (cs *ChannelSourceService) Resolve(ctx context.Context) []string {
	if len(cs.staticList) > 0 {
		return append([]string{}, cs.staticList...)
	}

	cs.mu.Lock()
	defer cs.mu.Unlock()

	rows, err := cs.sheetClient.GetRows(ctx, cs.sheetURL)
	if err != nil {
		logrus.Warnf("could not resolve channel list: %v", err)
		return append([]string{}, cs.cached...)
	}

	names := []string{}
	for _, row := range rows {
		for _, header := range cs.headers {
			value, ok := row[header]
			if !ok {
				continue
			}
			if name := normalizeName(value); name != "" {
				names = append(names, name)
			}
			break
		}
	}

	if len(names) == 0 {
		logrus.Warn("resolved channel list is empty")
		return names
	}

	cs.cached = names
	return append([]string{}, names...)
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func normalizeNames(names []string) []string {
	normalized := []string{}
	for _, name := range names {
		if n := normalizeName(name); n != "" {
			normalized = append(normalized, n)
		}
	}
	return normalized
}
