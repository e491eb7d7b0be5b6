package repository

import (
	"context"
	"slices"
	"strings"

	"repair_intake/internal/domain/entities"
	"repair_intake/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// BatchGetItem accepts at most 100 keys per call.
const batchGetLimit = 100

type serviceCatalogItem struct {
	ServiceName              string `dynamodbav:"service_name"`
	BasePrice                string `dynamodbav:"base_price"`
	EstimatedDurationMinutes int    `dynamodbav:"estimated_duration_minutes"`
	IsActive                 bool   `dynamodbav:"is_active"`
	Category                 string `dynamodbav:"category,omitempty"`
}

// ServiceCatalogDynamoRepository persists the price list.
//
// Table requirements:
//   - PK: service_name (string)

type ServiceCatalogDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IServiceCatalogRepository = (*ServiceCatalogDynamoRepository)(nil)

func NewServiceCatalogDynamoRepository(ddb *dynamodb.Client, tableName string) *ServiceCatalogDynamoRepository {
	return &ServiceCatalogDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ServiceCatalogDynamoRepository) LookupActivePrices(ctx context.Context, names []string) (map[string]entities.ServiceCatalogEntry, error) {
	found := make(map[string]entities.ServiceCatalogEntry, len(names))
	// BatchGetItem rejects duplicate keys.
	unique := slices.Compact(slices.Sorted(slices.Values(names)))
	for chunk := range slices.Chunk(unique, batchGetLimit) {
		keys := make([]map[string]types.AttributeValue, 0, len(chunk))
		for _, name := range chunk {
			keys = append(keys, map[string]types.AttributeValue{"service_name": stringAttr(name)})
		}
		request := map[string]types.KeysAndAttributes{
			r.tableName: {Keys: keys, ConsistentRead: aws.Bool(true)},
		}
		for len(request) > 0 {
			out, err := r.ddb.BatchGetItem(ctx, &dynamodb.BatchGetItemInput{RequestItems: request})
			if err != nil {
				return nil, err
			}
			for _, raw := range out.Responses[r.tableName] {
				var it serviceCatalogItem
				if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
					return nil, err
				}
				if it.IsActive {
					found[it.ServiceName] = fromServiceCatalogItem(it)
				}
			}
			request = out.UnprocessedKeys
		}
	}

	var missing []string
	for _, name := range names {
		if _, ok := found[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, &entities.UnknownServiceError{Names: missing}
	}
	return found, nil
}

func (r *ServiceCatalogDynamoRepository) ListActive(ctx context.Context) ([]entities.ServiceCatalogEntry, error) {
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName:                 aws.String(r.tableName),
		FilterExpression:          aws.String("#active = :true"),
		ExpressionAttributeNames:  map[string]string{"#active": "is_active"},
		ExpressionAttributeValues: map[string]types.AttributeValue{":true": &types.AttributeValueMemberBOOL{Value: true}},
	})

	var out []entities.ServiceCatalogEntry
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it serviceCatalogItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			out = append(out, fromServiceCatalogItem(it))
		}
	}
	slices.SortFunc(out, func(a, b entities.ServiceCatalogEntry) int {
		return strings.Compare(a.ServiceName, b.ServiceName)
	})
	return out, nil
}

func (r *ServiceCatalogDynamoRepository) Upsert(ctx context.Context, e entities.ServiceCatalogEntry) error {
	if err := e.Validate(); err != nil {
		return err
	}
	av, err := attributevalue.MarshalMap(toServiceCatalogItem(e))
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func toServiceCatalogItem(e entities.ServiceCatalogEntry) serviceCatalogItem {
	return serviceCatalogItem{
		ServiceName:              e.ServiceName,
		BasePrice:                e.BasePrice.String(),
		EstimatedDurationMinutes: e.EstimatedDurationMinutes,
		IsActive:                 e.IsActive,
		Category:                 e.Category,
	}
}

func fromServiceCatalogItem(it serviceCatalogItem) entities.ServiceCatalogEntry {
	return entities.ServiceCatalogEntry{
		ServiceName:              it.ServiceName,
		BasePrice:                parseDecimal(it.BasePrice),
		EstimatedDurationMinutes: it.EstimatedDurationMinutes,
		IsActive:                 it.IsActive,
		Category:                 it.Category,
	}
}
