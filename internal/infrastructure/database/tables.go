package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/sirupsen/logrus"
)

const tableActiveTimeout = 2 * time.Minute

// EnsureTables creates every missing table with a single string hash key "id"
// and waits until it is active. Existing tables are left untouched.
func EnsureTables(ctx context.Context, ddb DynamoDBAPI, tableNames ...string) error {
	log := logrus.WithField("component", "database")

	for _, name := range tableNames {
		_, err := ddb.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(name)})
		if err == nil {
			log.WithField("table", name).Debug("table exists")
			continue
		}
		var notFound *types.ResourceNotFoundException
		if !errors.As(err, &notFound) {
			return fmt.Errorf("describe table %s: %w", name, err)
		}

		log.WithField("table", name).Info("creating table")
		_, err = ddb.CreateTable(ctx, &dynamodb.CreateTableInput{
			TableName: aws.String(name),
			AttributeDefinitions: []types.AttributeDefinition{
				{AttributeName: aws.String("id"), AttributeType: types.ScalarAttributeTypeS},
			},
			KeySchema: []types.KeySchemaElement{
				{AttributeName: aws.String("id"), KeyType: types.KeyTypeHash},
			},
			BillingMode: types.BillingModePayPerRequest,
		})
		if err != nil {
			var inUse *types.ResourceInUseException
			if errors.As(err, &inUse) {
				// Another instance created it concurrently.
				continue
			}
			return fmt.Errorf("create table %s: %w", name, err)
		}

		waiter := dynamodb.NewTableExistsWaiter(ddb)
		if err := waiter.Wait(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(name)}, tableActiveTimeout); err != nil {
			return fmt.Errorf("wait for table %s: %w", name, err)
		}
	}
	return nil
}
