package database

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeTableAPI struct {
	mu          sync.Mutex
	tables      []string
	listErrs    []error
	createErr   error
	createdDefs []string
}

func (f *fakeTableAPI) ListTables(_ context.Context, in *dynamodb.ListTablesInput, _ ...func(*dynamodb.Options)) (*dynamodb.ListTablesOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.listErrs) > 0 {
		err := f.listErrs[0]
		f.listErrs = f.listErrs[1:]
		if err != nil {
			return nil, err
		}
	}

	// Two tables per page to exercise the paginator.
	start := 0
	if in.ExclusiveStartTableName != nil {
		for i, name := range f.tables {
			if name == *in.ExclusiveStartTableName {
				start = i + 1
			}
		}
	}
	end := start + 2
	if end > len(f.tables) {
		end = len(f.tables)
	}
	out := &dynamodb.ListTablesOutput{TableNames: append([]string(nil), f.tables[start:end]...)}
	if end < len(f.tables) {
		out.LastEvaluatedTableName = aws.String(f.tables[end-1])
	}
	return out, nil
}

func (f *fakeTableAPI) DescribeTable(_ context.Context, in *dynamodb.DescribeTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error) {
	return &dynamodb.DescribeTableOutput{Table: &types.TableDescription{
		TableName:   in.TableName,
		TableStatus: types.TableStatusActive,
	}}, nil
}

func (f *fakeTableAPI) CreateTable(_ context.Context, in *dynamodb.CreateTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.createdDefs = append(f.createdDefs, aws.ToString(in.TableName))
	f.tables = append(f.tables, aws.ToString(in.TableName))
	return &dynamodb.CreateTableOutput{}, nil
}

func tableDef(name string) *dynamodb.CreateTableInput {
	return &dynamodb.CreateTableInput{TableName: aws.String(name)}
}

func TestListTableNames_FollowsPages(t *testing.T) {
	api := &fakeTableAPI{tables: []string{"a", "b", "c", "d", "e"}}

	names, err := ListTableNames(context.Background(), api)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, names)
}

func TestEnsureTables_CreatesOnlyMissing(t *testing.T) {
	api := &fakeTableAPI{tables: []string{"printers"}}

	created, err := EnsureTables(context.Background(), api, []*dynamodb.CreateTableInput{
		tableDef("printers"), tableDef("quotes"), tableDef("users"),
	}, zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, []string{"quotes", "users"}, created)
	assert.Equal(t, []string{"quotes", "users"}, api.createdDefs)
}

func TestEnsureTables_TableCreatedConcurrently(t *testing.T) {
	api := &fakeTableAPI{createErr: &types.ResourceInUseException{Message: aws.String("exists")}}

	created, err := EnsureTables(context.Background(), api, []*dynamodb.CreateTableInput{tableDef("quotes")}, zap.NewNop())
	require.NoError(t, err)
	assert.Empty(t, created)
}

func TestEnsureTables_CreateError(t *testing.T) {
	api := &fakeTableAPI{createErr: errors.New("access denied")}

	_, err := EnsureTables(context.Background(), api, []*dynamodb.CreateTableInput{tableDef("quotes")}, zap.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create table quotes")
}

func TestWaitReady_RetriesUntilAvailable(t *testing.T) {
	api := &fakeTableAPI{listErrs: []error{errors.New("connection refused"), errors.New("connection refused")}}

	err := WaitReady(context.Background(), api, 10*time.Second, zap.NewNop())
	require.NoError(t, err)
	assert.Empty(t, api.listErrs)
}

func TestWaitReady_GivesUp(t *testing.T) {
	errs := make([]error, 1000)
	for i := range errs {
		errs[i] = errors.New("connection refused")
	}
	api := &fakeTableAPI{listErrs: errs}

	err := WaitReady(context.Background(), api, 300*time.Millisecond, zap.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dynamodb not reachable")
}

func TestStoreProbe(t *testing.T) {
	t.Run("without store", func(t *testing.T) {
		status := NewStoreProbe(nil, "us-east-1", "").Probe(context.Background())
		assert.Equal(t, "✅ Running", status.Backend)
		assert.Equal(t, "❌ Not Available", status.Database)
		assert.Equal(t, "Not Connected", status.ConnectionStatus)
		assert.NotNil(t, status.Collections)
		assert.Empty(t, status.Collections)
	})

	t.Run("connected", func(t *testing.T) {
		api := &fakeTableAPI{tables: []string{"printers", "quotes", "users"}}
		status := NewStoreProbe(api, "us-east-1", "http://dynamodb:8000").Probe(context.Background())
		assert.Equal(t, "✅ Connected & Working", status.Database)
		assert.Equal(t, "✅ Set", status.DatabaseURL)
		assert.Equal(t, "dynamodb/us-east-1", status.DatabaseName)
		assert.Equal(t, "Connected", status.ConnectionStatus)
		assert.Equal(t, []string{"printers", "quotes", "users"}, status.Collections)
	})

	t.Run("list error is truncated", func(t *testing.T) {
		api := &fakeTableAPI{listErrs: []error{errors.New(strings.Repeat("x", 200))}}
		status := NewStoreProbe(api, "us-east-1", "").Probe(context.Background())
		assert.True(t, strings.HasPrefix(status.Database, "⚠️ Connected but Error: "))
		assert.Equal(t, "❌ Not Set", status.DatabaseURL)
		assert.Equal(t, strings.Repeat("x", 80), strings.TrimPrefix(status.Database, "⚠️ Connected but Error: "))
	})
}
