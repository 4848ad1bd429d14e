package repository

//go:generate mockgen -source=client.go -destination=mocks/client.go -package=mocks
//go:generate mockgen -source=ad_account.go -destination=mocks/ad_account.go -package=mocks
//go:generate mockgen -source=review.go -destination=mocks/review.go -package=mocks
//go:generate mockgen -source=custom_budget.go -destination=mocks/custom_budget.go -package=mocks
//go:generate mockgen -source=campaign_health.go -destination=mocks/campaign_health.go -package=mocks
//go:generate mockgen -source=batch_log.go -destination=mocks/batch_log.go -package=mocks
//go:generate mockgen -source=batch_progress.go -destination=mocks/batch_progress.go -package=mocks

import (
	"database/sql"
	"errors"
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/budget-review-api/infrastructure/database/postgres"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var ErrNotFound = errors.New("registro não encontrado")

const dateLayout = "2006-01-02"

// wrapExecError mantém o código do postgres na mensagem
func wrapExecError(err error) error {
	return fmt.Errorf("database error (%s): %w", postgres.DescribeError(err), err)
}

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
