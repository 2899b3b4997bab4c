package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"card_payments/internal/domain/entities"
	"card_payments/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const DefaultTransactionsTableName = "transactions"

var ErrTransactionAlreadyRecorded = errors.New("transaction already recorded")

type transactionItem struct {
	ID            string `dynamodbav:"id"`
	Provider      string `dynamodbav:"provider"`
	Status        string `dynamodbav:"status"`
	Outcome       string `dynamodbav:"outcome"`
	Amount        int64  `dynamodbav:"amount"`
	Currency      string `dynamodbav:"currency"`
	CustomerID    string `dynamodbav:"customer_id,omitempty"`
	CardID        string `dynamodbav:"card_id,omitempty"`
	ReceiptNumber string `dynamodbav:"receipt_number,omitempty"`
	RecordedAt    string `dynamodbav:"recorded_at"`
}

// putItemAPI is the part of *dynamodb.Client the repository uses.
type putItemAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

// TransactionDynamoRepository persists completed charges in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type TransactionDynamoRepository struct {
	ddb       putItemAPI
	tableName string
}

var _ interfaces.ITransactionRecorder = (*TransactionDynamoRepository)(nil)

func NewTransactionDynamoRepository(ddb *dynamodb.Client, tableName string) *TransactionDynamoRepository {
	return newTransactionDynamoRepository(ddb, tableName)
}

func newTransactionDynamoRepository(ddb putItemAPI, tableName string) *TransactionDynamoRepository {
	if strings.TrimSpace(tableName) == "" {
		tableName = DefaultTransactionsTableName
	}
	return &TransactionDynamoRepository{ddb: ddb, tableName: tableName}
}

// Record writes tx once; a second write for the same payment id fails with
// ErrTransactionAlreadyRecorded.
func (r *TransactionDynamoRepository) Record(ctx context.Context, tx entities.Transaction) error {
	if strings.TrimSpace(tx.ID) == "" {
		return errors.New("transaction without id")
	}
	av, err := attributevalue.MarshalMap(toTransactionItem(tx))
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return ErrTransactionAlreadyRecorded
		}
		return err
	}
	return nil
}

func toTransactionItem(tx entities.Transaction) transactionItem {
	return transactionItem{
		ID:            tx.ID,
		Provider:      tx.Provider,
		Status:        tx.Status,
		Outcome:       string(tx.Outcome),
		Amount:        tx.Amount,
		Currency:      tx.Currency,
		CustomerID:    tx.CustomerID,
		CardID:        tx.CardID,
		ReceiptNumber: tx.ReceiptNumber,
		RecordedAt:    tx.RecordedAt.UTC().Format(time.RFC3339Nano),
	}
}
