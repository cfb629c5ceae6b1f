package service

import (
	"context"
	"fmt"
	"time"
	_ "time/tzdata"

	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/models"
)

// naiveLayouts are ISO 8601 forms without a zone offset. Such values are
// read as wall-clock time in the source zone.
var naiveLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
}

type timestampService struct {
	logger *logger.Logger
}

// NewTimestampService constructs a TimestampService.
func NewTimestampService(logger *logger.Logger) TimestampService {
	return &timestampService{logger: logger}
}

// Convert moves sourceTimestamp from sourceTZ into targetTZ and formats it as
// RFC 3339. A timestamp that already carries an offset keeps its instant and
// sourceTZ is only validated.
func (s *timestampService) Convert(ctx context.Context, sourceTimestamp, sourceTZ, targetTZ string) (models.TimestampConversionResponse, error) {
	log := logger.FromContext(ctx)

	source, err := time.LoadLocation(sourceTZ)
	if err != nil || sourceTZ == "" {
		log.Error().Str("source_tz", sourceTZ).Msg("unknown source time zone")
		return models.TimestampConversionResponse{}, fmt.Errorf("%w: unknown time zone %q", ErrInvalidDataProvided, sourceTZ)
	}

	target, err := time.LoadLocation(targetTZ)
	if err != nil || targetTZ == "" {
		log.Error().Str("target_tz", targetTZ).Msg("unknown target time zone")
		return models.TimestampConversionResponse{}, fmt.Errorf("%w: unknown time zone %q", ErrInvalidDataProvided, targetTZ)
	}

	t, err := parseTimestamp(sourceTimestamp, source)
	if err != nil {
		log.Error().Str("source_timestamp", sourceTimestamp).Msg("unparsable timestamp")
		return models.TimestampConversionResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return models.TimestampConversionResponse{
		ConvertedTimestamp: t.In(target).Format(time.RFC3339Nano),
	}, nil
}

func parseTimestamp(value string, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t, nil
	}

	for _, layout := range naiveLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("cannot parse timestamp %q", value)
}
