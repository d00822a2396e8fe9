package geoindex

import (
	"math"

	"orderflow/internal/entities"
	"orderflow/pkg/logger"
)

// Средний радиус Земли в километрах, сферическая модель.
// Обычной double-точности достаточно, геодезическая библиотека не нужна.
const earthRadiusKm = 6371.0087714

type Candidate struct {
	ID       string
	Location entities.GeoPoint
}

// Index выбирает ближайшего кандидата к точке. Чистая функция без I/O,
// весь ввод приносит вызывающий.
type Index struct {
	log handlerLogger
}

func New(log handlerLogger) *Index {
	return &Index{
		log: log,
	}
}

// Nearest возвращает кандидата с минимальной дистанцией по большому кругу
// до origin. Кандидаты с битыми координатами пропускаются с логом, а не
// роняют весь вызов. При равных дистанциях побеждает первый встреченный -
// выбор стабилен и детерминирован.
func (i *Index) Nearest(origin entities.GeoPoint, candidates []Candidate) (*Candidate, error) {
	if !origin.Valid() {
		return nil, ErrInvalidOrigin
	}

	var (
		best     *Candidate
		bestDist = math.MaxFloat64
	)

	for idx := range candidates {
		c := candidates[idx]
		if !c.Location.Valid() {
			i.log.With(
				logger.NewField("candidate", c.ID),
				logger.NewField("lat", c.Location.Lat),
				logger.NewField("lon", c.Location.Lon),
			).Warn("invalid location, candidate skipped")
			continue
		}

		dist := Distance(origin, c.Location)
		if dist < bestDist {
			bestDist = dist
			best = &candidates[idx]
		}
	}

	if best == nil {
		return nil, ErrNoEligibleCandidate
	}
	return best, nil
}

// Distance - haversine-дистанция между двумя точками в километрах.
func Distance(a, b entities.GeoPoint) float64 {
	latA := a.Lat * math.Pi / 180
	latB := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLon := (b.Lon - a.Lon) * math.Pi / 180

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)

	h := sinLat*sinLat + math.Cos(latA)*math.Cos(latB)*sinLon*sinLon
	return 2 * earthRadiusKm * math.Asin(math.Sqrt(h))
}
