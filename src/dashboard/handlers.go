// handlers.go
package dashboard

import (
	"errors"
	"fmt"
	"net/http"

	"ChurnIntelligence/src/datasource/file"
	"ChurnIntelligence/src/processor"
	"ChurnIntelligence/src/storage"

	"github.com/gin-gonic/gin"
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// API serves the computed views over one immutable table. Handlers
// recompute their aggregates per request; the table itself is shared
// read-only, so no locking is needed.
type API struct {
	df     dataframe.DataFrame
	logger *storage.Logger
}

func NewAPI(df dataframe.DataFrame, logger *storage.Logger) *API {
	return &API{
		df:     df,
		logger: logger,
	}
}

// Columns shown in the operational tables. Extra dataset columns stay
// out of the payloads.
var (
	riskTableColumns = []string{
		file.ColCustomerID,
		file.ColSegment,
		file.ColCLVProxy,
		file.ColChurnProbability,
		file.ColRiskLevel,
	}
	priorityTableColumns = []string{
		file.ColCustomerID,
		file.ColSegment,
		file.ColCLVProxy,
		file.ColChurnProbability,
	}
)

// Overview serves the headline tiles plus the two distributions.
func (a *API) Overview(c *gin.Context) {
	stats, err := processor.Headline(a.df)
	if err != nil {
		if errors.Is(err, processor.ErrEmptyDataset) {
			c.JSON(http.StatusOK, gin.H{"no_data": true})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	hist, err := processor.CLVHistogram(a.df)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"headline":          stats,
		"risk_distribution": processor.RiskDistribution(a.df),
		"clv_histogram":     hist,
	})
}

// Segments serves the per-segment summary table.
func (a *API) Segments(c *gin.Context) {
	stats := processor.SegmentSummary(a.df)
	if stats == nil {
		c.JSON(http.StatusOK, gin.H{"no_data": true})
		return
	}
	c.JSON(http.StatusOK, gin.H{"segments": stats})
}

// RiskTable serves the churn risk table, filtered by the ?level=
// selector. A value outside the selector's labels is logged and
// treated as "All".
func (a *API) RiskTable(c *gin.Context) {
	level := c.DefaultQuery("level", processor.RiskAll)
	if !processor.ValidRiskSelection(level) {
		a.logger.Warning(fmt.Sprintf("unknown risk selection %q, showing all rows", level))
		level = processor.RiskAll
	}

	out := processor.FilterByRisk(a.df, level)
	c.JSON(http.StatusOK, gin.H{
		"level": level,
		"rows":  frameRows(out, riskTableColumns),
	})
}

// Priority serves the high-risk, above-median-value customer table.
func (a *API) Priority(c *gin.Context) {
	out := processor.PriorityCustomers(a.df)
	c.JSON(http.StatusOK, gin.H{"rows": frameRows(out, priorityTableColumns)})
}

// RecommendedAction pairs a risk/value bucket with the retention play
// for it. The content is static, not derived from the dataset.
type RecommendedAction struct {
	Bucket string `json:"bucket"`
	Action string `json:"action"`
}

var recommendedActions = []RecommendedAction{
	{Bucket: "High Risk + High CLV", Action: "Immediate retention offers, personalized contact"},
	{Bucket: "High Risk + Low CLV", Action: "Limited incentives or automated campaigns"},
	{Bucket: "Medium Risk", Action: "Reminder emails, light discounts"},
	{Bucket: "Low Risk", Action: "No action required, nurture normally"},
}

// Recommendations serves the static retention action text block.
func (a *API) Recommendations(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"actions": recommendedActions})
}

// Logs streams log entries to the client as they are written.
func (a *API) Logs(c *gin.Context) {
	c.Header("Content-Type", "text/plain; charset=utf-8")

	logChan := a.logger.Subscribe()
	for {
		select {
		case msg := <-logChan:
			if _, err := fmt.Fprint(c.Writer, msg); err != nil {
				return
			}
			c.Writer.Flush()
		case <-c.Request.Context().Done():
			return
		}
	}
}

// frameRows converts selected columns of a DataFrame into JSON-ready
// row maps, keeping numeric columns numeric.
func frameRows(df dataframe.DataFrame, cols []string) []map[string]interface{} {
	rows := make([]map[string]interface{}, 0, df.Nrow())
	if df.Nrow() == 0 {
		return rows
	}

	ss := make([]series.Series, len(cols))
	for i, name := range cols {
		ss[i] = df.Col(name)
	}

	for r := 0; r < df.Nrow(); r++ {
		row := make(map[string]interface{}, len(cols))
		for i, name := range cols {
			row[name] = ss[i].Val(r)
		}
		rows = append(rows, row)
	}
	return rows
}
