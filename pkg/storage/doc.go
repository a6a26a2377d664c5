// Package storage writes rendered locale documents to a local directory
// or an S3-compatible bucket.
//
// # Keys
//
// Documents are addressed by slash-separated keys built with Key:
//
//	key, err := storage.Key("en", "common", ".json") // "en/common.json"
//
// Language and namespace segments are sanitized, so header values such as
// "../etc" cannot leave the output root.
//
// # Local directory
//
//	store := storage.NewDir("./locales")
//	err := store.Put(ctx, key, data, "application/json")
//
// Files are written with mode 0644; parent directories are created as needed.
//
// # S3
//
//	store, err := storage.NewS3(storage.Config{
//		Bucket:    "locales",
//		AccessKey: os.Getenv("S3_ACCESS_KEY"),
//		SecretKey: os.Getenv("S3_SECRET_KEY"),
//		Prefix:    "web",
//	})
//
// Set Endpoint and PathStyle for MinIO and other S3-compatible services.
//
// # Errors
//
// S3 failures are mapped to ErrNotFound, ErrAccessDenied, ErrUploadFailed
// and ErrReadFailed; match them with errors.Is.
package storage
