package pgxulid

import (
	"database/sql/driver"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/dmitrymomot/ulid"
)

// Codec implements pgtype.Codec for ulid.ULID over the Postgres uuid type.
type Codec struct{}

// Register installs the codec on m, replacing the default uuid handling so
// ulid.ULID binds and scans against uuid columns.
func Register(m *pgtype.Map) {
	m.RegisterType(&pgtype.Type{
		Name:  "uuid",
		OID:   pgtype.UUIDOID,
		Codec: Codec{},
	})
}

func (Codec) FormatSupported(format int16) bool {
	return format == pgtype.TextFormatCode || format == pgtype.BinaryFormatCode
}

func (Codec) PreferredFormat() int16 {
	return pgtype.BinaryFormatCode
}

func (Codec) PlanEncode(m *pgtype.Map, oid uint32, format int16, value any) pgtype.EncodePlan {
	if _, ok := value.(ulid.ULID); !ok {
		return nil
	}
	switch format {
	case pgtype.BinaryFormatCode:
		return encodePlanBinary{}
	case pgtype.TextFormatCode:
		return encodePlanText{}
	}
	return nil
}

type encodePlanBinary struct{}

func (encodePlanBinary) Encode(value any, buf []byte) ([]byte, error) {
	id, ok := value.(ulid.ULID)
	if !ok {
		return nil, fmt.Errorf("pgxulid: cannot encode %T", value)
	}
	return append(buf, id.Bytes()...), nil
}

type encodePlanText struct{}

func (encodePlanText) Encode(value any, buf []byte) ([]byte, error) {
	id, ok := value.(ulid.ULID)
	if !ok {
		return nil, fmt.Errorf("pgxulid: cannot encode %T", value)
	}
	return append(buf, id.UUID().String()...), nil
}

func (Codec) PlanScan(m *pgtype.Map, oid uint32, format int16, target any) pgtype.ScanPlan {
	if _, ok := target.(*ulid.ULID); !ok {
		return nil
	}
	switch format {
	case pgtype.BinaryFormatCode, pgtype.TextFormatCode:
		return scanPlan{format: format}
	}
	return nil
}

type scanPlan struct {
	format int16
}

func (p scanPlan) Scan(src []byte, target any) error {
	t, ok := target.(*ulid.ULID)
	if !ok {
		return fmt.Errorf("pgxulid: cannot scan into %T", target)
	}
	if src == nil {
		return fmt.Errorf("pgxulid: cannot scan NULL into %T", target)
	}
	id, err := decode(p.format, src)
	if err != nil {
		return err
	}
	*t = id
	return nil
}

func (c Codec) DecodeDatabaseSQLValue(m *pgtype.Map, oid uint32, format int16, src []byte) (driver.Value, error) {
	if src == nil {
		return nil, nil
	}
	id, err := decode(format, src)
	if err != nil {
		return nil, err
	}
	return id.String(), nil
}

func (c Codec) DecodeValue(m *pgtype.Map, oid uint32, format int16, src []byte) (any, error) {
	if src == nil {
		return nil, nil
	}
	return decode(format, src)
}

func decode(format int16, src []byte) (ulid.ULID, error) {
	switch format {
	case pgtype.BinaryFormatCode:
		return ulid.FromBytes(src)
	case pgtype.TextFormatCode:
		var id ulid.ULID
		if err := id.Scan(string(src)); err != nil {
			return id, err
		}
		return id, nil
	default:
		return ulid.ULID{}, fmt.Errorf("pgxulid: unknown format code %d", format)
	}
}
