package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"crewlo/internal/infrastructure/database"
	"crewlo/internal/infrastructure/metrics"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// MaxListSize caps how many records List returns for a kind.
const MaxListSize = 1000

const scanPageSize = 250

// collection is one DynamoDB table whose items are keyed by a string "id".
// The typed repositories translate between entities and items; collection
// only knows about attribute maps.
type collection struct {
	ddb       database.DynamoDBAPI
	tableName string
}

func (c collection) observe(operation string, start time.Time, err *error) {
	metrics.ObserveStorage(c.tableName, operation, start, *err)
}

func idKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: id},
	}
}

func (c collection) insert(ctx context.Context, item any) (err error) {
	defer c.observe("PutItem", time.Now(), &err)

	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return err
	}

	_, err = c.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(c.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	return err
}

// findAll scans the table until MaxListSize items were read. Order is whatever
// DynamoDB returns.
func findAll[T any](ctx context.Context, c collection) (out []T, err error) {
	defer c.observe("Scan", time.Now(), &err)

	out = make([]T, 0)
	p := dynamodb.NewScanPaginator(c.ddb, &dynamodb.ScanInput{
		TableName: aws.String(c.tableName),
		Limit:     aws.Int32(scanPageSize),
	})
	for p.HasMorePages() && len(out) < MaxListSize {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			if len(out) == MaxListSize {
				break
			}
			var it T
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			out = append(out, it)
		}
	}
	return out, nil
}

// findByID reports found=false when no item has the id.
func findByID[T any](ctx context.Context, c collection, id string) (it T, found bool, err error) {
	defer c.observe("GetItem", time.Now(), &err)

	out, err := c.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(c.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return it, false, err
	}
	if len(out.Item) == 0 {
		return it, false, nil
	}
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return it, false, err
	}
	return it, true, nil
}

// replaceFields overwrites the given attributes of an existing item with the
// values found in item. Attributes listed in fields but missing from the
// marshaled item (nil optionals) are removed. Attributes not listed are kept.
// found=false means the id does not exist and nothing was written.
func replaceFields[T any](ctx context.Context, c collection, id string, item any, fields []string) (it T, found bool, err error) {
	defer c.observe("UpdateItem", time.Now(), &err)

	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return it, false, err
	}
	updateExpr, values, names := buildReplaceExpression(av, fields)

	out, err := c.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(c.tableName),
		Key:                       idKey(id),
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return it, false, nil
		}
		return it, false, err
	}
	if len(out.Attributes) == 0 {
		return it, false, nil
	}
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return it, false, err
	}
	return it, true, nil
}

func buildReplaceExpression(av map[string]types.AttributeValue, fields []string) (string, map[string]types.AttributeValue, map[string]string) {
	var sets, removes []string
	values := make(map[string]types.AttributeValue, len(fields))
	names := make(map[string]string, len(fields))

	for _, f := range fields {
		names["#"+f] = f
		if v, ok := av[f]; ok {
			values[":"+f] = v
			sets = append(sets, fmt.Sprintf("#%s = :%s", f, f))
			continue
		}
		removes = append(removes, "#"+f)
	}

	var expr strings.Builder
	if len(sets) > 0 {
		expr.WriteString("SET ")
		expr.WriteString(strings.Join(sets, ", "))
	}
	if len(removes) > 0 {
		if expr.Len() > 0 {
			expr.WriteString(" ")
		}
		expr.WriteString("REMOVE ")
		expr.WriteString(strings.Join(removes, ", "))
	}
	return expr.String(), values, names
}

// deleteByID reports whether an item existed.
func (c collection) deleteByID(ctx context.Context, id string) (deleted bool, err error) {
	defer c.observe("DeleteItem", time.Now(), &err)

	out, err := c.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:    aws.String(c.tableName),
		Key:          idKey(id),
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return false, err
	}
	return len(out.Attributes) > 0, nil
}
