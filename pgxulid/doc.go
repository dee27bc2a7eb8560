// Package pgxulid integrates ulid.ULID with jackc/pgx by mapping it onto the
// Postgres uuid type: 16 raw bytes on the binary protocol, the hyphenated
// UUID string on the text protocol. ULIDs and UUIDs are both 128-bit values,
// so the mapping is lossless and uuid columns keep their native index
// behavior.
//
// Register the codec on each connection:
//
//	config, _ := pgxpool.ParseConfig(connString)
//	config.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
//		pgxulid.Register(conn.TypeMap())
//		return nil
//	}
//
// After registration, ulid.ULID values can be bound and scanned directly:
//
//	var id ulid.ULID
//	err := conn.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&id)
package pgxulid
