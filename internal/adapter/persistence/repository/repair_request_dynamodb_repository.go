package repository

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"repair_intake/internal/domain/entities"
	"repair_intake/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	requestRecordType = "repair_request"

	requestsEmailIndex       = "customer_email-index"
	requestsPhoneIndex       = "customer_phone-index"
	requestsStatusIndex      = "status-index"
	requestsDeviceIndex      = "device-index"
	requestsAppointmentIndex = "appointment-index"
	requestsSubmittedIndex   = "submitted_at-index"
)

type addressItem struct {
	StreetName  string `dynamodbav:"street_name"`
	HouseNumber string `dynamodbav:"house_number"`
	PostalCode  string `dynamodbav:"postal_code"`
	City        string `dynamodbav:"city"`
}

type customerItem struct {
	FirstName   string      `dynamodbav:"first_name"`
	LastName    string      `dynamodbav:"last_name"`
	Email       string      `dynamodbav:"email"`
	PhoneNumber string      `dynamodbav:"phone_number"`
	Address     addressItem `dynamodbav:"address"`
}

type lineItem struct {
	ServiceName              string `dynamodbav:"service_name"`
	QuotedPrice              string `dynamodbav:"quoted_price"`
	ActualPrice              string `dynamodbav:"actual_price,omitempty"`
	EstimatedDurationMinutes int    `dynamodbav:"estimated_duration_minutes"`
}

// repairRequestItem flattens the fields the GSIs key on. GSI key attributes
// are omitted when empty so requests without an appointment stay out of the
// appointment index.
type repairRequestItem struct {
	ID         string `dynamodbav:"id"`
	RecordType string `dynamodbav:"record_type"`

	Customer      customerItem `dynamodbav:"customer"`
	CustomerEmail string       `dynamodbav:"customer_email"`
	CustomerPhone string       `dynamodbav:"customer_phone"`

	DeviceBrand string `dynamodbav:"device_brand"`
	DeviceModel string `dynamodbav:"device_model"`
	DeviceIMEI  string `dynamodbav:"device_imei,omitempty"`
	DeviceKey   string `dynamodbav:"device_key"`

	Repairs     []lineItem `dynamodbav:"repairs"`
	ServiceType string     `dynamodbav:"service_type"`
	Status      string     `dynamodbav:"status"`

	AppointmentDate        string `dynamodbav:"appointment_date,omitempty"`
	AppointmentTime        string `dynamodbav:"appointment_time,omitempty"`
	AppointmentConfirmedAt string `dynamodbav:"appointment_confirmed_at,omitempty"`
	ReleasePending         bool   `dynamodbav:"release_pending,omitempty"`

	TotalQuotedPrice string `dynamodbav:"total_quoted_price"`
	TotalActualPrice string `dynamodbav:"total_actual_price,omitempty"`
	AdditionalNotes  string `dynamodbav:"additional_notes,omitempty"`

	SubmittedAt string `dynamodbav:"submitted_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
	Version     int64  `dynamodbav:"version"`
}

// RepairRequestDynamoRepository persists RepairRequest entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI customer_email-index (PK customer_email)
//   - GSI customer_phone-index (PK customer_phone)
//   - GSI status-index (PK status, SK submitted_at)
//   - GSI device-index (PK device_key = brand#model)
//   - GSI appointment-index (PK appointment_date, SK appointment_time)
//   - GSI submitted_at-index (PK record_type, SK submitted_at)

type RepairRequestDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IRepairRequestRepository = (*RepairRequestDynamoRepository)(nil)

func NewRepairRequestDynamoRepository(ddb *dynamodb.Client, tableName string) *RepairRequestDynamoRepository {
	return &RepairRequestDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *RepairRequestDynamoRepository) Create(ctx context.Context, req entities.RepairRequest) (entities.RepairRequest, error) {
	av, err := attributevalue.MarshalMap(toRepairRequestItem(req))
	if err != nil {
		return entities.RepairRequest{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if _, exists := conditionFailed(err); exists {
		return entities.RepairRequest{}, fmt.Errorf("%w: %s", entities.ErrRepairRequestExists, req.ID)
	}
	if err != nil {
		return entities.RepairRequest{}, err
	}
	return req, nil
}

func (r *RepairRequestDynamoRepository) GetByID(ctx context.Context, id string) (entities.RepairRequest, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            map[string]types.AttributeValue{"id": stringAttr(id)},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.RepairRequest{}, err
	}
	if len(out.Item) == 0 {
		return entities.RepairRequest{}, nil
	}
	return unmarshalRepairRequest(out.Item)
}

func (r *RepairRequestDynamoRepository) Update(ctx context.Context, req entities.RepairRequest) (entities.RepairRequest, error) {
	next := req.Clone()
	next.Version = req.Version + 1
	av, err := attributevalue.MarshalMap(toRepairRequestItem(next))
	if err != nil {
		return entities.RepairRequest{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_exists(#id) AND #version = :prev"),
		ExpressionAttributeNames: map[string]string{"#id": "id", "#version": "version"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":prev": &types.AttributeValueMemberN{Value: fmt.Sprint(req.Version)},
		},
	})
	if _, stale := conditionFailed(err); stale {
		return entities.RepairRequest{}, fmt.Errorf("%w: %s", entities.ErrVersionConflict, req.ID)
	}
	if err != nil {
		return entities.RepairRequest{}, err
	}
	return next, nil
}

func (r *RepairRequestDynamoRepository) ListIDs(ctx context.Context) ([]string, error) {
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName:                aws.String(r.tableName),
		ProjectionExpression:     aws.String("#id"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	ids := []string{}
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it struct {
				ID string `dynamodbav:"id"`
			}
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			ids = append(ids, it.ID)
		}
	}
	slices.Sort(ids)
	return ids, nil
}

func (r *RepairRequestDynamoRepository) ListAll(ctx context.Context) ([]entities.RepairRequest, error) {
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	var out []entities.RepairRequest
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		reqs, err := unmarshalRepairRequests(page.Items)
		if err != nil {
			return nil, err
		}
		out = append(out, reqs...)
	}
	sortNewestFirst(out)
	return out, nil
}

func (r *RepairRequestDynamoRepository) ListByCustomerEmail(ctx context.Context, email string) ([]entities.RepairRequest, error) {
	out, err := r.query(ctx, &dynamodb.QueryInput{
		IndexName:                 aws.String(requestsEmailIndex),
		KeyConditionExpression:    aws.String("#email = :v"),
		ExpressionAttributeNames:  map[string]string{"#email": "customer_email"},
		ExpressionAttributeValues: map[string]types.AttributeValue{":v": stringAttr(strings.ToLower(email))},
	}, 0)
	sortNewestFirst(out)
	return out, err
}

func (r *RepairRequestDynamoRepository) ListByCustomerPhone(ctx context.Context, phone string) ([]entities.RepairRequest, error) {
	out, err := r.query(ctx, &dynamodb.QueryInput{
		IndexName:                 aws.String(requestsPhoneIndex),
		KeyConditionExpression:    aws.String("#phone = :v"),
		ExpressionAttributeNames:  map[string]string{"#phone": "customer_phone"},
		ExpressionAttributeValues: map[string]types.AttributeValue{":v": stringAttr(phone)},
	}, 0)
	sortNewestFirst(out)
	return out, err
}

func (r *RepairRequestDynamoRepository) ListByStatus(ctx context.Context, status entities.RepairStatus) ([]entities.RepairRequest, error) {
	return r.query(ctx, &dynamodb.QueryInput{
		IndexName:                 aws.String(requestsStatusIndex),
		KeyConditionExpression:    aws.String("#status = :v"),
		ExpressionAttributeNames:  map[string]string{"#status": "status"},
		ExpressionAttributeValues: map[string]types.AttributeValue{":v": stringAttr(string(status))},
		ScanIndexForward:          aws.Bool(false),
	}, 0)
}

func (r *RepairRequestDynamoRepository) ListByDevice(ctx context.Context, brand, model string) ([]entities.RepairRequest, error) {
	out, err := r.query(ctx, &dynamodb.QueryInput{
		IndexName:                 aws.String(requestsDeviceIndex),
		KeyConditionExpression:    aws.String("#device = :v"),
		ExpressionAttributeNames:  map[string]string{"#device": "device_key"},
		ExpressionAttributeValues: map[string]types.AttributeValue{":v": stringAttr(deviceKey(brand, model))},
	}, 0)
	sortNewestFirst(out)
	return out, err
}

func (r *RepairRequestDynamoRepository) ListByAppointmentDate(ctx context.Context, from, to string) ([]entities.RepairRequest, error) {
	var out []entities.RepairRequest
	for date, err := range datesBetween(from, to) {
		if err != nil {
			return nil, err
		}
		reqs, err := r.query(ctx, &dynamodb.QueryInput{
			IndexName:                 aws.String(requestsAppointmentIndex),
			KeyConditionExpression:    aws.String("#date = :v"),
			ExpressionAttributeNames:  map[string]string{"#date": "appointment_date"},
			ExpressionAttributeValues: map[string]types.AttributeValue{":v": stringAttr(date)},
			ScanIndexForward:          aws.Bool(true),
		}, 0)
		if err != nil {
			return nil, err
		}
		out = append(out, reqs...)
	}
	return out, nil
}

func (r *RepairRequestDynamoRepository) ListRecent(ctx context.Context, limit int) ([]entities.RepairRequest, error) {
	return r.query(ctx, &dynamodb.QueryInput{
		IndexName:                 aws.String(requestsSubmittedIndex),
		KeyConditionExpression:    aws.String("#rt = :v"),
		ExpressionAttributeNames:  map[string]string{"#rt": "record_type"},
		ExpressionAttributeValues: map[string]types.AttributeValue{":v": stringAttr(requestRecordType)},
		ScanIndexForward:          aws.Bool(false),
	}, limit)
}

// query pages through an index, stopping after limit results when limit > 0.
func (r *RepairRequestDynamoRepository) query(ctx context.Context, in *dynamodb.QueryInput, limit int) ([]entities.RepairRequest, error) {
	in.TableName = aws.String(r.tableName)
	if limit > 0 {
		in.Limit = aws.Int32(int32(limit))
	}
	p := dynamodb.NewQueryPaginator(r.ddb, in)
	out := []entities.RepairRequest{}
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		reqs, err := unmarshalRepairRequests(page.Items)
		if err != nil {
			return nil, err
		}
		out = append(out, reqs...)
		if limit > 0 && len(out) >= limit {
			return out[:limit], nil
		}
	}
	return out, nil
}

func sortNewestFirst(reqs []entities.RepairRequest) {
	slices.SortStableFunc(reqs, func(a, b entities.RepairRequest) int {
		return b.SubmittedAt.Compare(a.SubmittedAt)
	})
}

func deviceKey(brand, model string) string {
	return brand + "#" + model
}

func unmarshalRepairRequests(items []map[string]types.AttributeValue) ([]entities.RepairRequest, error) {
	out := make([]entities.RepairRequest, 0, len(items))
	for _, raw := range items {
		req, err := unmarshalRepairRequest(raw)
		if err != nil {
			return nil, err
		}
		out = append(out, req)
	}
	return out, nil
}

func unmarshalRepairRequest(raw map[string]types.AttributeValue) (entities.RepairRequest, error) {
	var it repairRequestItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.RepairRequest{}, err
	}
	return fromRepairRequestItem(it), nil
}

func toRepairRequestItem(r entities.RepairRequest) repairRequestItem {
	c := r.Customer
	it := repairRequestItem{
		ID:         r.ID,
		RecordType: requestRecordType,
		Customer: customerItem{
			FirstName:   c.FirstName,
			LastName:    c.LastName,
			Email:       c.Email,
			PhoneNumber: c.PhoneNumber,
			Address: addressItem{
				StreetName:  c.Address.StreetName,
				HouseNumber: c.Address.HouseNumber,
				PostalCode:  c.Address.PostalCode,
				City:        c.Address.City,
			},
		},
		CustomerEmail:    strings.ToLower(c.Email),
		CustomerPhone:    c.PhoneNumber,
		DeviceBrand:      r.Device.Brand,
		DeviceModel:      r.Device.Model,
		DeviceKey:        deviceKey(r.Device.Brand, r.Device.Model),
		Repairs:          make([]lineItem, 0, len(r.Repairs)),
		ServiceType:      string(r.ServiceType),
		Status:           string(r.Status),
		TotalQuotedPrice: r.TotalQuotedPrice.String(),
		TotalActualPrice: formatDecimalPtr(r.TotalActualPrice),
		SubmittedAt:      formatTime(r.SubmittedAt),
		UpdatedAt:        formatTime(r.UpdatedAt),
		Version:          r.Version,
	}
	if r.Device.IMEINumber != nil {
		it.DeviceIMEI = *r.Device.IMEINumber
	}
	if r.AdditionalNotes != nil {
		it.AdditionalNotes = *r.AdditionalNotes
	}
	for _, li := range r.Repairs {
		it.Repairs = append(it.Repairs, lineItem{
			ServiceName:              li.ServiceName,
			QuotedPrice:              li.QuotedPrice.String(),
			ActualPrice:              formatDecimalPtr(li.ActualPrice),
			EstimatedDurationMinutes: li.EstimatedDurationMinutes,
		})
	}
	if a := r.Appointment; a != nil {
		it.AppointmentDate = a.Date
		it.AppointmentTime = a.Time
		it.AppointmentConfirmedAt = formatTimePtr(a.ConfirmedAt)
		it.ReleasePending = a.ReleasePending
	}
	return it
}

func fromRepairRequestItem(it repairRequestItem) entities.RepairRequest {
	c := it.Customer
	r := entities.RepairRequest{
		ID: it.ID,
		Customer: entities.Customer{
			FirstName:   c.FirstName,
			LastName:    c.LastName,
			Email:       c.Email,
			PhoneNumber: c.PhoneNumber,
			Address: entities.Address{
				StreetName:  c.Address.StreetName,
				HouseNumber: c.Address.HouseNumber,
				PostalCode:  c.Address.PostalCode,
				City:        c.Address.City,
			},
		},
		Device:           entities.Device{Brand: it.DeviceBrand, Model: it.DeviceModel},
		Repairs:          make([]entities.RepairLineItem, 0, len(it.Repairs)),
		ServiceType:      entities.ServiceType(it.ServiceType),
		Status:           entities.RepairStatus(it.Status),
		TotalQuotedPrice: parseDecimal(it.TotalQuotedPrice),
		TotalActualPrice: parseDecimalPtr(it.TotalActualPrice),
		SubmittedAt:      parseTime(it.SubmittedAt),
		UpdatedAt:        parseTime(it.UpdatedAt),
		Version:          it.Version,
	}
	if it.DeviceIMEI != "" {
		imei := it.DeviceIMEI
		r.Device.IMEINumber = &imei
	}
	if it.AdditionalNotes != "" {
		notes := it.AdditionalNotes
		r.AdditionalNotes = &notes
	}
	for _, li := range it.Repairs {
		r.Repairs = append(r.Repairs, entities.RepairLineItem{
			ServiceName:              li.ServiceName,
			QuotedPrice:              parseDecimal(li.QuotedPrice),
			ActualPrice:              parseDecimalPtr(li.ActualPrice),
			EstimatedDurationMinutes: li.EstimatedDurationMinutes,
		})
	}
	if it.AppointmentDate != "" {
		r.Appointment = &entities.Appointment{
			Date:           it.AppointmentDate,
			Time:           it.AppointmentTime,
			ConfirmedAt:    parseTimePtr(it.AppointmentConfirmedAt),
			ReleasePending: it.ReleasePending,
		}
	}
	return r
}
