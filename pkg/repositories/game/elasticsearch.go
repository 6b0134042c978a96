package game

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/fadedpez/gofish/internal/logging"
	"github.com/fadedpez/gofish/internal/types"
	"github.com/fadedpez/gofish/pkg/entities"
)

// DefaultIndexPrefix is used when ElasticsearchConfig.IndexPrefix is empty
const DefaultIndexPrefix = "gofish"

const matchIndexMapping = `{
	"mappings": {
		"properties": {
			"match_id":     {"type": "keyword"},
			"game_type":    {"type": "keyword"},
			"started_at":   {"type": "date"},
			"completed_at": {"type": "date"},
			"duration_ms":  {"type": "long"},
			"turns":        {"type": "integer"},
			"winner":       {"type": "keyword"},
			"tied":         {"type": "boolean"},
			"players": {
				"type": "nested",
				"properties": {
					"player_name": {"type": "keyword"},
					"seat":        {"type": "integer"},
					"automated":   {"type": "boolean"},
					"books":       {"type": "integer"},
					"book_ranks":  {"type": "keyword"},
					"result":      {"type": "keyword"}
				}
			}
		}
	}
}`

// ElasticsearchConfig holds configuration options for the Elasticsearch repository
type ElasticsearchConfig struct {
	URL         string
	Username    string
	Password    string
	IndexPrefix string
	// Transport overrides the HTTP transport, mostly for tests
	Transport http.RoundTripper
}

// ElasticsearchRepository stores results in a base repository and mirrors
// every saved match into an Elasticsearch index. Reads go to the base repository.
type ElasticsearchRepository struct {
	baseRepo Repository
	client   *elasticsearch.Client
	index    string
	logger   *logging.Logger
}

// NewElasticsearchRepository wraps baseRepo, creating the match index if needed
func NewElasticsearchRepository(ctx context.Context, baseRepo Repository, config *ElasticsearchConfig, logger *logging.Logger) (*ElasticsearchRepository, error) {
	cfg := elasticsearch.Config{
		Addresses: []string{config.URL},
		Transport: config.Transport,
	}

	// Add authentication if provided
	if config.Username != "" && config.Password != "" {
		cfg.Username = config.Username
		cfg.Password = config.Password
	}

	client, err := elasticsearch.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("error creating Elasticsearch client: %w", err)
	}

	prefix := config.IndexPrefix
	if prefix == "" {
		prefix = DefaultIndexPrefix
	}
	if logger == nil {
		logger = logging.Discard()
	}

	repo := &ElasticsearchRepository{
		baseRepo: baseRepo,
		client:   client,
		index:    prefix + "_matches",
		logger:   logger,
	}

	if err := repo.initIndex(ctx); err != nil {
		return nil, fmt.Errorf("error initializing index: %w", err)
	}

	return repo, nil
}

// Index returns the name of the match index
func (r *ElasticsearchRepository) Index() string {
	return r.index
}

// initIndex creates the match index if it doesn't exist
func (r *ElasticsearchRepository) initIndex(ctx context.Context) error {
	res, err := r.client.Indices.Exists([]string{r.index}, r.client.Indices.Exists.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("error checking if index exists: %w", err)
	}
	res.Body.Close()

	if res.StatusCode == http.StatusOK {
		return nil
	}
	if res.StatusCode != http.StatusNotFound {
		return fmt.Errorf("unexpected status checking index %s: %s", r.index, res.Status())
	}

	req := esapi.IndicesCreateRequest{
		Index: r.index,
		Body:  strings.NewReader(matchIndexMapping),
	}
	res, err = req.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("error creating index: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("error creating index %s: %s", r.index, res.String())
	}

	r.logger.Info("created Elasticsearch index %s", r.index)
	return nil
}

// IndexMatchResult indexes a match result, keyed by match ID
func (r *ElasticsearchRepository) IndexMatchResult(ctx context.Context, result *entities.MatchResult) error {
	jsonData, err := json.Marshal(newESMatchDocument(result))
	if err != nil {
		return fmt.Errorf("error marshaling match result: %w", err)
	}

	res, err := r.client.Index(
		r.index,
		bytes.NewReader(jsonData),
		r.client.Index.WithDocumentID(result.ID),
		r.client.Index.WithContext(ctx),
		r.client.Index.WithRefresh("true"),
	)
	if err != nil {
		return fmt.Errorf("error indexing match result: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("error indexing match result: %s", res.String())
	}

	return nil
}

// SaveMatchResult saves to the base repository and then indexes the result.
// An indexing failure is logged; the result is still stored.
func (r *ElasticsearchRepository) SaveMatchResult(ctx context.Context, result *entities.MatchResult) error {
	if err := r.baseRepo.SaveMatchResult(ctx, result); err != nil {
		return err
	}

	if err := r.IndexMatchResult(ctx, result); err != nil {
		r.logger.LogError(types.WrapError(types.ErrDatabaseError, "match saved but not indexed", err))
	}
	return nil
}

// GetMatchResult implements Repository
func (r *ElasticsearchRepository) GetMatchResult(ctx context.Context, id string) (*entities.MatchResult, error) {
	return r.baseRepo.GetMatchResult(ctx, id)
}

// GetPlayerResults implements Repository
func (r *ElasticsearchRepository) GetPlayerResults(ctx context.Context, playerName string) ([]*entities.MatchResult, error) {
	return r.baseRepo.GetPlayerResults(ctx, playerName)
}

// GetRecentResults implements Repository
func (r *ElasticsearchRepository) GetRecentResults(ctx context.Context, limit int) ([]*entities.MatchResult, error) {
	return r.baseRepo.GetRecentResults(ctx, limit)
}

// GetPlayerStatistics implements Repository
func (r *ElasticsearchRepository) GetPlayerStatistics(ctx context.Context, playerName string) (*entities.PlayerStatistics, error) {
	return r.baseRepo.GetPlayerStatistics(ctx, playerName)
}

// GetAllPlayerStatistics implements Repository
func (r *ElasticsearchRepository) GetAllPlayerStatistics(ctx context.Context) ([]*entities.PlayerStatistics, error) {
	return r.baseRepo.GetAllPlayerStatistics(ctx)
}

// Close closes the base repository
func (r *ElasticsearchRepository) Close() error {
	return r.baseRepo.Close()
}
