package shopapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/bytedance/sonic"

	"github.com/hylla/browse/pkg/types"
)

const defaultTimeout = 10 * time.Second

// HttpClient talks to the product/collection/category services. All
// calls share one fixed timeout; a timeout surfaces as a plain error
// for the caller to report.
type HttpClient struct {
	BaseUrl string
	client  *http.Client
}

func NewHttpClient(baseUrl string, timeout time.Duration) *HttpClient {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &HttpClient{
		BaseUrl: strings.TrimSuffix(baseUrl, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

type collectionsEnvelope struct {
	Data []types.Collection `json:"data"`
}

type categoriesEnvelope struct {
	Data []types.Category `json:"data"`
}

type productsEnvelope struct {
	Data struct {
		Products []types.Product `json:"products"`
		MaxPrice float64         `json:"maxPrice"`
	} `json:"data"`
	TotalRecord int `json:"totalRecord"`
}

func (c *HttpClient) get(ctx context.Context, path string, query url.Values, out any) error {
	u := c.BaseUrl + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	res, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("%s returned status %d", path, res.StatusCode)
	}
	return sonic.ConfigDefault.NewDecoder(res.Body).Decode(out)
}

func (c *HttpClient) GetCollections(ctx context.Context, keyword string) ([]types.Collection, error) {
	query := url.Values{}
	if keyword != "" {
		query.Set("keyword", keyword)
	}
	var env collectionsEnvelope
	if err := c.get(ctx, "/collections", query, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

func (c *HttpClient) GetCategories(ctx context.Context) ([]types.Category, error) {
	var env categoriesEnvelope
	if err := c.get(ctx, "/categories", nil, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

// Values encodes the query with empty and zero fields left out, so an
// unset bound never reaches the wire as "0".
func (q ProductQuery) Values() url.Values {
	values := url.Values{}
	values.Set("limit", strconv.Itoa(q.Limit))
	values.Set("offset", strconv.Itoa(q.Offset))
	if q.CollectionId != "" {
		values.Set("collection_id", q.CollectionId)
	}
	if q.CategoryId != "" {
		values.Set("category_id", q.CategoryId)
	}
	if q.PriceFrom > 0 {
		values.Set("price_from", strconv.Itoa(q.PriceFrom))
	}
	if q.PriceTo > 0 {
		values.Set("price_to", strconv.Itoa(q.PriceTo))
	}
	if len(q.Seasons) > 0 {
		values.Set("seasons", strings.Join(q.Seasons, ","))
	}
	if len(q.Styles) > 0 {
		values.Set("styles", strings.Join(q.Styles, ","))
	}
	if q.Keyword != "" {
		values.Set("keyword", q.Keyword)
	}
	return values
}

func (c *HttpClient) GetProducts(ctx context.Context, q ProductQuery) (*ProductPage, error) {
	var env productsEnvelope
	if err := c.get(ctx, "/products", q.Values(), &env); err != nil {
		return nil, err
	}
	return &ProductPage{
		Products:     env.Data.Products,
		MaxPrice:     env.Data.MaxPrice,
		TotalRecords: env.TotalRecord,
	}, nil
}
