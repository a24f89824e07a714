// Package dynamotest provides an in-memory stand-in for the DynamoDB client.
//
// It understands only the request shapes produced by this repository:
// a string hash key named "id", attribute_exists/attribute_not_exists
// conditions on that key, "SET #a = :a, ... REMOVE #b, ..." update
// expressions and Limit/ExclusiveStartKey scans.
package dynamotest

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type item = map[string]types.AttributeValue

type table struct {
	items map[string]item
	order []string
}

// Fake is safe for concurrent use.
type Fake struct {
	mu     sync.Mutex
	tables map[string]*table

	// Err, when set, is returned by every call.
	Err error
	// Calls counts calls per operation name ("PutItem", "Scan", ...).
	Calls map[string]int
}

func New() *Fake {
	return &Fake{tables: map[string]*table{}, Calls: map[string]int{}}
}

// Items returns the number of items stored in a table.
func (f *Fake) Items(tableName string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	if t, ok := f.tables[tableName]; ok {
		return len(t.items)
	}
	return 0
}

func (f *Fake) begin(op string) error {
	f.Calls[op]++
	return f.Err
}

func (f *Fake) table(name *string) *table {
	n := aws.ToString(name)
	t, ok := f.tables[n]
	if !ok {
		t = &table{items: map[string]item{}}
		f.tables[n] = t
	}
	return t
}

func keyOf(it item) (string, error) {
	s, ok := it["id"].(*types.AttributeValueMemberS)
	if !ok {
		return "", fmt.Errorf("dynamotest: missing string key id")
	}
	return s.Value, nil
}

func clone(it item) item {
	out := make(item, len(it))
	for k, v := range it {
		out[k] = v
	}
	return out
}

func conditionFailed() error {
	return &types.ConditionalCheckFailedException{Message: aws.String("The conditional request failed")}
}

func (f *Fake) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.begin("PutItem"); err != nil {
		return nil, err
	}

	key, err := keyOf(in.Item)
	if err != nil {
		return nil, err
	}
	t := f.table(in.TableName)
	_, exists := t.items[key]
	if exists && strings.Contains(aws.ToString(in.ConditionExpression), "attribute_not_exists") {
		return nil, conditionFailed()
	}
	if !exists {
		t.order = append(t.order, key)
	}
	t.items[key] = clone(in.Item)
	return &dynamodb.PutItemOutput{}, nil
}

func (f *Fake) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.begin("GetItem"); err != nil {
		return nil, err
	}

	key, err := keyOf(in.Key)
	if err != nil {
		return nil, err
	}
	it, ok := f.table(in.TableName).items[key]
	if !ok {
		return &dynamodb.GetItemOutput{}, nil
	}
	return &dynamodb.GetItemOutput{Item: clone(it)}, nil
}

func (f *Fake) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.begin("UpdateItem"); err != nil {
		return nil, err
	}

	key, err := keyOf(in.Key)
	if err != nil {
		return nil, err
	}
	t := f.table(in.TableName)
	current, exists := t.items[key]
	if !exists {
		if strings.Contains(aws.ToString(in.ConditionExpression), "attribute_exists") {
			return nil, conditionFailed()
		}
		current = clone(in.Key)
		t.order = append(t.order, key)
	}

	next := clone(current)
	if err := applyUpdate(next, aws.ToString(in.UpdateExpression), in.ExpressionAttributeNames, in.ExpressionAttributeValues); err != nil {
		return nil, err
	}
	t.items[key] = next

	out := &dynamodb.UpdateItemOutput{}
	if in.ReturnValues == types.ReturnValueAllNew {
		out.Attributes = clone(next)
	}
	return out, nil
}

func applyUpdate(it item, expr string, names map[string]string, values map[string]types.AttributeValue) error {
	setPart, removePart := expr, ""
	if i := strings.Index(expr, "REMOVE "); i >= 0 {
		setPart, removePart = expr[:i], expr[i+len("REMOVE "):]
	}
	setPart = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(setPart), "SET "))

	if setPart != "" {
		for _, assignment := range strings.Split(setPart, ",") {
			parts := strings.SplitN(assignment, "=", 2)
			if len(parts) != 2 {
				return fmt.Errorf("dynamotest: unsupported assignment %q", assignment)
			}
			name, ok := names[strings.TrimSpace(parts[0])]
			if !ok {
				return fmt.Errorf("dynamotest: unknown name %q", parts[0])
			}
			val, ok := values[strings.TrimSpace(parts[1])]
			if !ok {
				return fmt.Errorf("dynamotest: unknown value %q", parts[1])
			}
			it[name] = val
		}
	}

	removePart = strings.TrimSpace(removePart)
	if removePart != "" {
		for _, placeholder := range strings.Split(removePart, ",") {
			name, ok := names[strings.TrimSpace(placeholder)]
			if !ok {
				return fmt.Errorf("dynamotest: unknown name %q", placeholder)
			}
			delete(it, name)
		}
	}
	return nil
}

func (f *Fake) DeleteItem(_ context.Context, in *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.begin("DeleteItem"); err != nil {
		return nil, err
	}

	key, err := keyOf(in.Key)
	if err != nil {
		return nil, err
	}
	t := f.table(in.TableName)
	old, ok := t.items[key]
	if !ok {
		if strings.Contains(aws.ToString(in.ConditionExpression), "attribute_exists") {
			return nil, conditionFailed()
		}
		return &dynamodb.DeleteItemOutput{}, nil
	}
	delete(t.items, key)
	for i, k := range t.order {
		if k == key {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}

	out := &dynamodb.DeleteItemOutput{}
	if in.ReturnValues == types.ReturnValueAllOld {
		out.Attributes = old
	}
	return out, nil
}

func (f *Fake) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.begin("Scan"); err != nil {
		return nil, err
	}

	t := f.table(in.TableName)
	start := 0
	if in.ExclusiveStartKey != nil {
		after, err := keyOf(in.ExclusiveStartKey)
		if err != nil {
			return nil, err
		}
		for i, k := range t.order {
			if k == after {
				start = i + 1
				break
			}
		}
	}

	limit := len(t.order)
	if in.Limit != nil && int(*in.Limit) < limit {
		limit = int(*in.Limit)
	}

	out := &dynamodb.ScanOutput{}
	i := start
	for ; i < len(t.order) && len(out.Items) < limit; i++ {
		out.Items = append(out.Items, clone(t.items[t.order[i]]))
	}
	out.Count = int32(len(out.Items))
	out.ScannedCount = out.Count
	if i < len(t.order) && len(out.Items) > 0 {
		out.LastEvaluatedKey = item{"id": &types.AttributeValueMemberS{Value: t.order[i-1]}}
	}
	return out, nil
}

func (f *Fake) DescribeTable(_ context.Context, in *dynamodb.DescribeTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.begin("DescribeTable"); err != nil {
		return nil, err
	}

	if _, ok := f.tables[aws.ToString(in.TableName)]; !ok {
		return nil, &types.ResourceNotFoundException{Message: aws.String("Cannot do operations on a non-existent table")}
	}
	return &dynamodb.DescribeTableOutput{Table: &types.TableDescription{
		TableName:   in.TableName,
		TableStatus: types.TableStatusActive,
	}}, nil
}

func (f *Fake) CreateTable(_ context.Context, in *dynamodb.CreateTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.begin("CreateTable"); err != nil {
		return nil, err
	}

	name := aws.ToString(in.TableName)
	if _, ok := f.tables[name]; ok {
		return nil, &types.ResourceInUseException{Message: aws.String("Table already exists: " + name)}
	}
	f.tables[name] = &table{items: map[string]item{}}
	return &dynamodb.CreateTableOutput{TableDescription: &types.TableDescription{
		TableName:   in.TableName,
		TableStatus: types.TableStatusActive,
	}}, nil
}
