// pkg/export/report.go
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/meridian-data/starmart/pkg/model"
)

// WriteQualityReport writes the per-run quality summary to
// data_quality_report.json in the output directory.
func WriteQualityReport(outputDir string, report model.QualityReport, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal quality report: %w", err)
	}

	path := filepath.Join(outputDir, "data_quality_report.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	logger.Info("Exported quality report", zap.String("path", path))
	return nil
}
