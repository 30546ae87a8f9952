package buildops

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/diillson/buildops-audit-go/internal/domain/entity"
	"github.com/diillson/buildops-audit-go/internal/domain/repository"
	"github.com/diillson/buildops-audit-go/internal/shared/types"
)

// notPaged marks requests that do not carry a page index.
const notPaged = -1

// Options configures the resource client.
type Options struct {
	BaseURL    string
	HTTPClient *http.Client
	// RequestsPerSecond spaces requests across every pool of a run; 0 disables it.
	RequestsPerSecond float64
	Logger            *zap.Logger
}

// ResourceRepositoryImpl implementa o ResourceRepository sobre a API REST da BuildOps.
type ResourceRepositoryImpl struct {
	baseURL    string
	session    *entity.Session
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *zap.Logger
}

// NewResourceRepository cria um cliente ligado a uma sessão já autorizada.
// The session is only read, so the client is safe for concurrent use.
func NewResourceRepository(session *entity.Session, opts Options) repository.ResourceRepository {
	r := &ResourceRepositoryImpl{
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		session:    session,
		httpClient: opts.HTTPClient,
		logger:     opts.Logger,
	}
	if r.baseURL == "" {
		r.baseURL = types.DefaultAPIBaseURL
	}
	if r.httpClient == nil {
		r.httpClient = &http.Client{Timeout: types.DefaultHTTPTimeout * time.Second}
	}
	if r.logger == nil {
		r.logger = zap.NewNop()
	}
	if opts.RequestsPerSecond > 0 {
		burst := max(1, int(opts.RequestsPerSecond))
		r.limiter = rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), burst)
	}
	return r
}

func pageQuery(sizeParam string, pageSize, page int) url.Values {
	q := url.Values{}
	q.Set(sizeParam, strconv.Itoa(pageSize))
	q.Set("page", strconv.Itoa(page))
	return q
}

func (r *ResourceRepositoryImpl) GetCustomers(ctx context.Context, pageSize, page int) (entity.Page[entity.Customer], error) {
	return getPage[entity.Customer](ctx, r, "customers", "/v1/customers", pageQuery("limit", pageSize, page), page)
}

func (r *ResourceRepositoryImpl) GetCustomerProperties(ctx context.Context, customerID string) (entity.Page[entity.Property], error) {
	path := "/v1/customers/" + url.PathEscape(customerID) + "/properties"
	dto, err := getPage[propertyDTO](ctx, r, "customer properties", path, nil, notPaged)
	if err != nil {
		return entity.Page[entity.Property]{}, err
	}
	return toPropertyPage(dto), nil
}

func (r *ResourceRepositoryImpl) GetProperties(ctx context.Context, pageSize, page int) (entity.Page[entity.Property], error) {
	q := pageQuery("page_size", pageSize, page)
	q.Set("include_addresses", "true")
	dto, err := getPage[propertyDTO](ctx, r, "properties", "/v1/properties", q, page)
	if err != nil {
		return entity.Page[entity.Property]{}, err
	}
	return toPropertyPage(dto), nil
}

func (r *ResourceRepositoryImpl) GetAssetMakes(ctx context.Context, pageSize, page int) (entity.Page[entity.AssetMake], error) {
	return getPage[entity.AssetMake](ctx, r, "asset makes", "/v1/asset-makes", pageQuery("pageSize", pageSize, page), page)
}

func (r *ResourceRepositoryImpl) GetAssets(ctx context.Context, pageSize, page int) (entity.Page[entity.Asset], error) {
	return getPage[entity.Asset](ctx, r, "assets", "/v1/assets", pageQuery("pageSize", pageSize, page), page)
}

func (r *ResourceRepositoryImpl) GetVendors(ctx context.Context, pageSize, page int) (entity.Page[entity.Vendor], error) {
	return getPage[entity.Vendor](ctx, r, "vendors", "/v1/vendors", pageQuery("page_size", pageSize, page), page)
}

func (r *ResourceRepositoryImpl) headers() (http.Header, error) {
	authHeader, err := r.session.AuthHeader()
	if err != nil {
		return nil, err
	}
	tenant, err := r.session.Tenant()
	if err != nil {
		return nil, err
	}
	h := http.Header{}
	h.Set("Authorization", authHeader)
	h.Set("tenantId", tenant)
	h.Set("Accept", "application/json")
	return h, nil
}

// getPage issues one GET and decodes the {items, totalCount} envelope.
func getPage[T any](ctx context.Context, r *ResourceRepositoryImpl, resource, path string, query url.Values, page int) (entity.Page[T], error) {
	var result entity.Page[T]

	headers, err := r.headers()
	if err != nil {
		return result, err
	}

	if r.limiter != nil {
		if err := r.limiter.Wait(ctx); err != nil {
			return result, &types.TransportError{Resource: resource, Page: page, Err: err}
		}
	}

	endpoint := r.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return result, &types.TransportError{Resource: resource, Page: page, Err: err}
	}
	req.Header = headers

	start := time.Now()
	resp, err := r.httpClient.Do(req)
	if err != nil {
		return result, &types.TransportError{Resource: resource, Page: page, Err: err}
	}
	defer resp.Body.Close()

	r.logger.Debug("api request",
		zap.String("resource", resource),
		zap.String("path", path),
		zap.Int("page", page),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return result, &types.TransportError{Resource: resource, Page: page, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return result, &types.TransportError{Resource: resource, Page: page, Err: err}
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return result, &types.TransportError{Resource: resource, Page: page, Err: fmt.Errorf("decoding response: %w", err)}
	}
	return result, nil
}
