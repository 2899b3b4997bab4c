package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"card_payments/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type fakePutItem struct {
	input *dynamodb.PutItemInput
	err   error
}

func (f *fakePutItem) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.input = in
	if f.err != nil {
		return nil, f.err
	}
	return &dynamodb.PutItemOutput{}, nil
}

func TestTransactionDynamoRepository_Record(t *testing.T) {
	tx := entities.Transaction{
		ID:            "pay_1",
		Provider:      entities.ProviderSquare,
		Status:        "COMPLETED",
		Outcome:       entities.PaymentOutcomeSucceeded,
		Amount:        1_000_000_000_000,
		Currency:      "USD",
		CustomerID:    "CUST_1",
		ReceiptNumber: "R1",
		RecordedAt:    time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC),
	}

	t.Run("conditional put", func(t *testing.T) {
		fake := &fakePutItem{}
		repo := newTransactionDynamoRepository(fake, "")

		if err := repo.Record(context.Background(), tx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		in := fake.input
		if aws.ToString(in.TableName) != DefaultTransactionsTableName {
			t.Fatalf("unexpected table %q", aws.ToString(in.TableName))
		}
		if aws.ToString(in.ConditionExpression) != "attribute_not_exists(#id)" || in.ExpressionAttributeNames["#id"] != "id" {
			t.Fatalf("unexpected condition: %v %v", aws.ToString(in.ConditionExpression), in.ExpressionAttributeNames)
		}

		var it transactionItem
		if err := attributevalue.UnmarshalMap(in.Item, &it); err != nil {
			t.Fatalf("unmarshal item: %v", err)
		}
		if it.ID != "pay_1" || it.Amount != 1_000_000_000_000 || it.Outcome != "succeeded" || it.RecordedAt != "2024-05-06T07:08:09Z" {
			t.Fatalf("unexpected item: %+v", it)
		}
		if _, ok := in.Item["card_id"]; ok {
			t.Fatalf("expected empty card_id to be omitted")
		}
	})

	t.Run("duplicate id", func(t *testing.T) {
		fake := &fakePutItem{err: &types.ConditionalCheckFailedException{Message: aws.String("exists")}}
		repo := newTransactionDynamoRepository(fake, "transactions-test")

		err := repo.Record(context.Background(), tx)
		if !errors.Is(err, ErrTransactionAlreadyRecorded) {
			t.Fatalf("expected ErrTransactionAlreadyRecorded, got %v", err)
		}
		if aws.ToString(fake.input.TableName) != "transactions-test" {
			t.Fatalf("unexpected table %q", aws.ToString(fake.input.TableName))
		}
	})

	t.Run("other errors pass through", func(t *testing.T) {
		fake := &fakePutItem{err: errors.New("throttled")}
		repo := newTransactionDynamoRepository(fake, "")
		if err := repo.Record(context.Background(), tx); err == nil || err.Error() != "throttled" {
			t.Fatalf("expected throttled, got %v", err)
		}
	})

	t.Run("missing id", func(t *testing.T) {
		fake := &fakePutItem{}
		repo := newTransactionDynamoRepository(fake, "")
		if err := repo.Record(context.Background(), entities.Transaction{}); err == nil {
			t.Fatalf("expected error")
		}
		if fake.input != nil {
			t.Fatalf("expected no put")
		}
	})
}

func TestLogTransactionRecorder(t *testing.T) {
	if err := (LogTransactionRecorder{}).Record(context.Background(), entities.Transaction{ID: "pay_1"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
