package repository

import (
	"context"
	"fmt"

	"repair_intake/internal/domain/entities"
	"repair_intake/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const paymentsRequestIDIndex = "request_id-index"

type repairPaymentItem struct {
	ID           string                 `dynamodbav:"id"`
	RequestID    string                 `dynamodbav:"request_id"`
	Amount       string                 `dynamodbav:"amount"`
	Date         string                 `dynamodbav:"date"`
	Status       string                 `dynamodbav:"status"`
	MPPayload    map[string]interface{} `dynamodbav:"mp_payload,omitempty"`
	MPPayloadRaw string                 `dynamodbav:"mp_payload_raw,omitempty"`
}

// RepairPaymentDynamoRepository persists RepairPayment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: request_id-index (PK: request_id)

type RepairPaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IRepairPaymentRepository = (*RepairPaymentDynamoRepository)(nil)

func NewRepairPaymentDynamoRepository(ddb *dynamodb.Client, tableName string) *RepairPaymentDynamoRepository {
	return &RepairPaymentDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *RepairPaymentDynamoRepository) Create(ctx context.Context, p entities.RepairPayment) (entities.RepairPayment, error) {
	av, err := attributevalue.MarshalMap(toRepairPaymentItem(p))
	if err != nil {
		return entities.RepairPayment{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if _, exists := conditionFailed(err); exists {
		return entities.RepairPayment{}, fmt.Errorf("%w: %s", entities.ErrPaymentAlreadyExists, p.ID)
	}
	if err != nil {
		return entities.RepairPayment{}, err
	}
	return p, nil
}

func (r *RepairPaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.RepairPayment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            map[string]types.AttributeValue{"id": stringAttr(id)},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.RepairPayment{}, err
	}
	if len(out.Item) == 0 {
		return entities.RepairPayment{}, nil
	}

	var it repairPaymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.RepairPayment{}, err
	}
	return fromRepairPaymentItem(it), nil
}

func (r *RepairPaymentDynamoRepository) ListByRequestID(ctx context.Context, requestID string) ([]entities.RepairPayment, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		IndexName:                 aws.String(paymentsRequestIDIndex),
		KeyConditionExpression:    aws.String("request_id = :rid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{":rid": stringAttr(requestID)},
	})

	items := []entities.RepairPayment{}
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it repairPaymentItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromRepairPaymentItem(it))
		}
	}
	return items, nil
}

func toRepairPaymentItem(p entities.RepairPayment) repairPaymentItem {
	return repairPaymentItem{
		ID:           p.ID,
		RequestID:    p.RequestID,
		Amount:       p.Amount.String(),
		Date:         formatTime(p.Date),
		Status:       string(p.Status),
		MPPayload:    p.MPPayload,
		MPPayloadRaw: string(p.MPPayloadRaw),
	}
}

func fromRepairPaymentItem(it repairPaymentItem) entities.RepairPayment {
	return entities.RepairPayment{
		ID:           it.ID,
		RequestID:    it.RequestID,
		Amount:       parseDecimal(it.Amount),
		Date:         parseTime(it.Date),
		Status:       entities.PaymentStatus(it.Status),
		MPPayload:    it.MPPayload,
		MPPayloadRaw: []byte(it.MPPayloadRaw),
	}
}
