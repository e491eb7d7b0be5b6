package repository

import (
	"context"
	"fmt"
	"iter"
	"time"

	"repair_intake/internal/domain/entities"
	"repair_intake/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// releaseAttempts bounds retries when a concurrent release shifts the
// booking's list index between read and write.
const releaseAttempts = 3

type slotBookingItem struct {
	RequestID     string `dynamodbav:"request_id"`
	CustomerEmail string `dynamodbav:"customer_email"`
	BookedAt      string `dynamodbav:"booked_at"`
}

type appointmentSlotItem struct {
	Date             string            `dynamodbav:"date"`
	Time             string            `dynamodbav:"time"`
	MaxCapacity      int               `dynamodbav:"max_capacity"`
	CurrentBookings  int               `dynamodbav:"current_bookings"`
	IsAvailable      bool              `dynamodbav:"is_available"`
	BookedBy         []slotBookingItem `dynamodbav:"booked_by"`
	BookedRequestIDs []string          `dynamodbav:"booked_request_ids,stringset,omitempty"`
}

// AppointmentSlotDynamoRepository stores one item per slot. Reserve and
// Release are single conditional UpdateItem calls on that item, so capacity
// checks and the booking list never diverge.
//
// Table requirements:
//   - PK: date (string, YYYY-MM-DD)
//   - SK: time (string, HH:MM)

type AppointmentSlotDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
	now       func() time.Time
}

var _ interfaces.IAppointmentSlotRepository = (*AppointmentSlotDynamoRepository)(nil)

func NewAppointmentSlotDynamoRepository(ddb *dynamodb.Client, tableName string) *AppointmentSlotDynamoRepository {
	return &AppointmentSlotDynamoRepository{
		ddb:       ddb,
		tableName: tableName,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func slotKeyAttrs(key entities.SlotKey) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"date": stringAttr(key.Date),
		"time": stringAttr(key.Time),
	}
}

func (r *AppointmentSlotDynamoRepository) FindAvailable(ctx context.Context, from, to string) iter.Seq2[entities.AppointmentSlot, error] {
	return func(yield func(entities.AppointmentSlot, error) bool) {
		for date, err := range datesBetween(from, to) {
			if err != nil {
				yield(entities.AppointmentSlot{}, err)
				return
			}
			p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
				TableName:              aws.String(r.tableName),
				KeyConditionExpression: aws.String("#date = :d"),
				FilterExpression:       aws.String("#avail = :true AND #cur < #max"),
				ExpressionAttributeNames: map[string]string{
					"#date":  "date",
					"#avail": "is_available",
					"#cur":   "current_bookings",
					"#max":   "max_capacity",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":d":    stringAttr(date),
					":true": &types.AttributeValueMemberBOOL{Value: true},
				},
			})
			for p.HasMorePages() {
				page, err := p.NextPage(ctx)
				if err != nil {
					yield(entities.AppointmentSlot{}, err)
					return
				}
				for _, raw := range page.Items {
					slot, err := unmarshalSlot(raw)
					if !yield(slot, err) || err != nil {
						return
					}
				}
			}
		}
	}
}

func (r *AppointmentSlotDynamoRepository) ListRange(ctx context.Context, from, to string) ([]entities.AppointmentSlot, error) {
	var out []entities.AppointmentSlot
	for date, err := range datesBetween(from, to) {
		if err != nil {
			return nil, err
		}
		p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
			TableName:                 aws.String(r.tableName),
			KeyConditionExpression:    aws.String("#date = :d"),
			ExpressionAttributeNames:  map[string]string{"#date": "date"},
			ExpressionAttributeValues: map[string]types.AttributeValue{":d": stringAttr(date)},
		})
		for p.HasMorePages() {
			page, err := p.NextPage(ctx)
			if err != nil {
				return nil, err
			}
			for _, raw := range page.Items {
				slot, err := unmarshalSlot(raw)
				if err != nil {
					return nil, err
				}
				out = append(out, slot)
			}
		}
	}
	return out, nil
}

func (r *AppointmentSlotDynamoRepository) Get(ctx context.Context, key entities.SlotKey) (entities.AppointmentSlot, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            slotKeyAttrs(key),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.AppointmentSlot{}, err
	}
	if len(out.Item) == 0 {
		return entities.AppointmentSlot{}, nil
	}
	return unmarshalSlot(out.Item)
}

func (r *AppointmentSlotDynamoRepository) CreateSlots(ctx context.Context, slots []entities.AppointmentSlot) (int, error) {
	for _, s := range slots {
		if err := s.Validate(); err != nil {
			return 0, err
		}
	}
	created := 0
	for _, s := range slots {
		av, err := attributevalue.MarshalMap(toSlotItem(s))
		if err != nil {
			return created, err
		}
		_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
			TableName:                aws.String(r.tableName),
			Item:                     av,
			ConditionExpression:      aws.String("attribute_not_exists(#date)"),
			ExpressionAttributeNames: map[string]string{"#date": "date"},
		})
		if _, exists := conditionFailed(err); exists {
			continue
		}
		if err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}

func (r *AppointmentSlotDynamoRepository) Reserve(ctx context.Context, key entities.SlotKey, requestID, customerEmail string) (entities.ReservationToken, error) {
	bookedAt := r.now()
	entry, err := attributevalue.MarshalMap(slotBookingItem{
		RequestID:     requestID,
		CustomerEmail: customerEmail,
		BookedAt:      formatTime(bookedAt),
	})
	if err != nil {
		return entities.ReservationToken{}, err
	}

	_, err = r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 slotKeyAttrs(key),
		ConditionExpression: aws.String("attribute_exists(#date) AND #avail = :true AND #cur < #max AND NOT contains(#ids, :rid)"),
		UpdateExpression:    aws.String("SET #cur = #cur + :one, #booked = list_append(if_not_exists(#booked, :empty), :entry) ADD #ids :ridset"),
		ExpressionAttributeNames: map[string]string{
			"#date":   "date",
			"#avail":  "is_available",
			"#cur":    "current_bookings",
			"#max":    "max_capacity",
			"#booked": "booked_by",
			"#ids":    "booked_request_ids",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":true":   &types.AttributeValueMemberBOOL{Value: true},
			":one":    &types.AttributeValueMemberN{Value: "1"},
			":empty":  &types.AttributeValueMemberL{Value: []types.AttributeValue{}},
			":entry":  &types.AttributeValueMemberL{Value: []types.AttributeValue{&types.AttributeValueMemberM{Value: entry}}},
			":rid":    stringAttr(requestID),
			":ridset": &types.AttributeValueMemberSS{Value: []string{requestID}},
		},
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	})
	if err == nil {
		return entities.ReservationToken{Date: key.Date, Time: key.Time, RequestID: requestID, BookedAt: bookedAt, Fresh: true}, nil
	}

	cfe, ok := conditionFailed(err)
	if !ok {
		return entities.ReservationToken{}, err
	}
	return classifyReserveFailure(key, requestID, cfe.Item)
}

// classifyReserveFailure explains a failed reservation from the slot as it
// was when the condition was evaluated.
func classifyReserveFailure(key entities.SlotKey, requestID string, old map[string]types.AttributeValue) (entities.ReservationToken, error) {
	if len(old) == 0 {
		return entities.ReservationToken{}, fmt.Errorf("%w: %s", entities.ErrSlotNotFound, key)
	}
	slot, err := unmarshalSlot(old)
	if err != nil {
		return entities.ReservationToken{}, err
	}
	if i := slot.BookingIndex(requestID); i >= 0 {
		return entities.ReservationToken{Date: key.Date, Time: key.Time, RequestID: requestID, BookedAt: slot.BookedBy[i].BookedAt}, nil
	}
	return entities.ReservationToken{}, fmt.Errorf("%w: %s", entities.ErrSlotFull, key)
}

func (r *AppointmentSlotDynamoRepository) Release(ctx context.Context, key entities.SlotKey, requestID string) error {
	for attempt := 0; attempt < releaseAttempts; attempt++ {
		slot, err := r.Get(ctx, key)
		if err != nil {
			return err
		}
		idx := slot.BookingIndex(requestID)
		if slot.Date == "" || idx < 0 {
			return fmt.Errorf("%w: %s on %s", entities.ErrBookingNotFound, requestID, key)
		}

		_, err = r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
			TableName:           aws.String(r.tableName),
			Key:                 slotKeyAttrs(key),
			ConditionExpression: aws.String(fmt.Sprintf("#booked[%d].#rid = :rid", idx)),
			UpdateExpression:    aws.String(fmt.Sprintf("SET #cur = #cur - :one REMOVE #booked[%d] DELETE #ids :ridset", idx)),
			ExpressionAttributeNames: map[string]string{
				"#booked": "booked_by",
				"#rid":    "request_id",
				"#cur":    "current_bookings",
				"#ids":    "booked_request_ids",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":rid":    stringAttr(requestID),
				":one":    &types.AttributeValueMemberN{Value: "1"},
				":ridset": &types.AttributeValueMemberSS{Value: []string{requestID}},
			},
		})
		if err == nil {
			return nil
		}
		if _, shifted := conditionFailed(err); !shifted {
			return err
		}
	}
	return fmt.Errorf("release %s on %s: booking moved during %d attempts", requestID, key, releaseAttempts)
}

func (r *AppointmentSlotDynamoRepository) SetAvailability(ctx context.Context, key entities.SlotKey, available bool) (entities.AppointmentSlot, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                aws.String(r.tableName),
		Key:                      slotKeyAttrs(key),
		ConditionExpression:      aws.String("attribute_exists(#date)"),
		UpdateExpression:         aws.String("SET #avail = :v"),
		ExpressionAttributeNames: map[string]string{"#date": "date", "#avail": "is_available"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberBOOL{Value: available},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if _, missing := conditionFailed(err); missing {
		return entities.AppointmentSlot{}, fmt.Errorf("%w: %s", entities.ErrSlotNotFound, key)
	}
	if err != nil {
		return entities.AppointmentSlot{}, err
	}
	return unmarshalSlot(out.Attributes)
}

// datesBetween yields every YYYY-MM-DD date in [from, to].
func datesBetween(from, to string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		first, err := time.Parse(entities.DateLayout, from)
		if err != nil {
			yield("", fmt.Errorf("invalid from date %q: %w", from, err))
			return
		}
		last, err := time.Parse(entities.DateLayout, to)
		if err != nil {
			yield("", fmt.Errorf("invalid to date %q: %w", to, err))
			return
		}
		for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
			if !yield(d.Format(entities.DateLayout), nil) {
				return
			}
		}
	}
}

func unmarshalSlot(raw map[string]types.AttributeValue) (entities.AppointmentSlot, error) {
	var it appointmentSlotItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.AppointmentSlot{}, err
	}
	return fromSlotItem(it), nil
}

func toSlotItem(s entities.AppointmentSlot) appointmentSlotItem {
	it := appointmentSlotItem{
		Date:            s.Date,
		Time:            s.Time,
		MaxCapacity:     s.MaxCapacity,
		CurrentBookings: s.CurrentBookings,
		IsAvailable:     s.IsAvailable,
		BookedBy:        make([]slotBookingItem, 0, len(s.BookedBy)),
	}
	for _, b := range s.BookedBy {
		it.BookedBy = append(it.BookedBy, slotBookingItem{
			RequestID:     b.RequestID,
			CustomerEmail: b.CustomerEmail,
			BookedAt:      formatTime(b.BookedAt),
		})
		it.BookedRequestIDs = append(it.BookedRequestIDs, b.RequestID)
	}
	return it
}

func fromSlotItem(it appointmentSlotItem) entities.AppointmentSlot {
	s := entities.AppointmentSlot{
		Date:            it.Date,
		Time:            it.Time,
		MaxCapacity:     it.MaxCapacity,
		CurrentBookings: it.CurrentBookings,
		IsAvailable:     it.IsAvailable,
		BookedBy:        make([]entities.SlotBooking, 0, len(it.BookedBy)),
	}
	for _, b := range it.BookedBy {
		s.BookedBy = append(s.BookedBy, entities.SlotBooking{
			RequestID:     b.RequestID,
			CustomerEmail: b.CustomerEmail,
			BookedAt:      parseTime(b.BookedAt),
		})
	}
	return s
}
