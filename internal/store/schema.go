package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS datasets (
    source_path          TEXT PRIMARY KEY,
    content_hash         TEXT NOT NULL,
    mtime_ns             INTEGER NOT NULL,
    size_bytes           INTEGER NOT NULL,
    parsed_at            TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS dataset_years (
    source_path          TEXT NOT NULL REFERENCES datasets(source_path) ON DELETE CASCADE,
    position             INTEGER NOT NULL,
    label                TEXT NOT NULL,
    year                 INTEGER NOT NULL,
    PRIMARY KEY (source_path, position)
);

CREATE TABLE IF NOT EXISTS records (
    source_path          TEXT NOT NULL REFERENCES datasets(source_path) ON DELETE CASCADE,
    position             INTEGER NOT NULL,
    department           TEXT NOT NULL,
    year                 INTEGER NOT NULL,
    budget               REAL NOT NULL,
    PRIMARY KEY (source_path, position)
);

CREATE INDEX IF NOT EXISTS idx_records_dept ON records(source_path, department);
`
