package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	appconfig "repair_intake/internal/infrastructure/config"
	"repair_intake/internal/infrastructure/logging"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/rs/zerolog"
)

const tableWaitTimeout = 2 * time.Minute

// TableDefinitions describes every table the service needs, keyed to the
// configured names.
func TableDefinitions(t appconfig.Tables) []*dynamodb.CreateTableInput {
	str := func(names ...string) []types.AttributeDefinition {
		defs := make([]types.AttributeDefinition, 0, len(names))
		for _, n := range names {
			defs = append(defs, types.AttributeDefinition{AttributeName: aws.String(n), AttributeType: types.ScalarAttributeTypeS})
		}
		return defs
	}
	key := func(hash, rng string) []types.KeySchemaElement {
		ks := []types.KeySchemaElement{{AttributeName: aws.String(hash), KeyType: types.KeyTypeHash}}
		if rng != "" {
			ks = append(ks, types.KeySchemaElement{AttributeName: aws.String(rng), KeyType: types.KeyTypeRange})
		}
		return ks
	}
	gsi := func(name, hash, rng string) types.GlobalSecondaryIndex {
		return types.GlobalSecondaryIndex{
			IndexName:  aws.String(name),
			KeySchema:  key(hash, rng),
			Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
		}
	}

	return []*dynamodb.CreateTableInput{
		{
			TableName:            aws.String(t.Services),
			AttributeDefinitions: str("service_name"),
			KeySchema:            key("service_name", ""),
			BillingMode:          types.BillingModePayPerRequest,
		},
		{
			TableName:            aws.String(t.Slots),
			AttributeDefinitions: str("date", "time"),
			KeySchema:            key("date", "time"),
			BillingMode:          types.BillingModePayPerRequest,
		},
		{
			TableName: aws.String(t.Requests),
			AttributeDefinitions: str(
				"id", "customer_email", "customer_phone", "status", "submitted_at",
				"device_key", "appointment_date", "appointment_time", "record_type",
			),
			KeySchema:   key("id", ""),
			BillingMode: types.BillingModePayPerRequest,
			GlobalSecondaryIndexes: []types.GlobalSecondaryIndex{
				gsi("customer_email-index", "customer_email", ""),
				gsi("customer_phone-index", "customer_phone", ""),
				gsi("status-index", "status", "submitted_at"),
				gsi("device-index", "device_key", ""),
				gsi("appointment-index", "appointment_date", "appointment_time"),
				gsi("submitted_at-index", "record_type", "submitted_at"),
			},
		},
		{
			TableName:            aws.String(t.Payments),
			AttributeDefinitions: str("id", "request_id"),
			KeySchema:            key("id", ""),
			BillingMode:          types.BillingModePayPerRequest,
			GlobalSecondaryIndexes: []types.GlobalSecondaryIndex{
				gsi("request_id-index", "request_id", ""),
			},
		},
	}
}

// CreateTables creates any missing table and waits until each is active.
// Tables that already exist are left alone.
func CreateTables(ctx context.Context, ddb *dynamodb.Client, t appconfig.Tables, logger *zerolog.Logger) error {
	log := logging.OrNop(logger)
	waiter := dynamodb.NewTableExistsWaiter(ddb)
	for _, in := range TableDefinitions(t) {
		name := aws.ToString(in.TableName)
		_, err := ddb.CreateTable(ctx, in)
		var inUse *types.ResourceInUseException
		switch {
		case errors.As(err, &inUse):
			log.Info().Str("table", name).Msg("table already exists")
			continue
		case err != nil:
			return fmt.Errorf("create table %s: %w", name, err)
		}
		if err := waiter.Wait(ctx, &dynamodb.DescribeTableInput{TableName: in.TableName}, tableWaitTimeout); err != nil {
			return fmt.Errorf("wait for table %s: %w", name, err)
		}
		log.Info().Str("table", name).Msg("table created")
	}
	return nil
}
