package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/tkaria/mlbase/internal/models"
)

var _ list.Item = jobItem{}

// jobItem wraps [models.IngestionJob] to implement [list.Item].
type jobItem struct {
	job models.IngestionJob
}

func (i jobItem) FilterValue() string { return i.job.DataSourceURI }
func (i jobItem) Title() string {
	return fmt.Sprintf("#%d %s", i.job.ID, i.job.DataSourceURI)
}
func (i jobItem) Description() string {
	desc := fmt.Sprintf("%s • created %s", i.job.Status, i.job.CreatedAt.Format("2006-01-02 15:04:05"))
	if i.job.CompletedAt != nil {
		desc = fmt.Sprintf("%s • finished %s", desc, i.job.CompletedAt.Format("2006-01-02 15:04:05"))
	}
	return desc
}
