package sqlstore

import (
	"context"
	"fmt"

	"github.com/innerguide/guide-api/pkg/sqlstore"
	"github.com/innerguide/guide-api/pkg/types"
)

type SqlProviderAchieve interface {
	GetMaster(ctx ...context.Context) sqlstore.SqlExecutor
	GetReplica(ctx ...context.Context) sqlstore.SqlExecutor
}

// CommonFields is embedded by every concrete store.
type CommonFields struct {
	provider   SqlProviderAchieve
	table      types.Table
	allColumns []string
}

func (c *CommonFields) SetProvider(p SqlProviderAchieve) {
	c.provider = p
}

func (c *CommonFields) SetTable(table types.Table) {
	c.table = table
}

func (c *CommonFields) SetAllColumns(columns ...string) {
	c.allColumns = columns
}

func (c *CommonFields) GetTable() string {
	return c.table.Name()
}

func (c *CommonFields) GetAllColumns() []string {
	return c.allColumns
}

func (c *CommonFields) GetMaster(ctx ...context.Context) sqlstore.SqlExecutor {
	return c.provider.GetMaster(ctx...)
}

func (c *CommonFields) GetReplica(ctx ...context.Context) sqlstore.SqlExecutor {
	return c.provider.GetReplica(ctx...)
}

func ErrorSqlBuild(err error) error {
	return fmt.Errorf("failed to build sql query: %w", err)
}
