// Package services contains the application services of the campus client:
// one service per backend (auth, marketplace, booking, exam, dashboard) plus
// the health prober. Each service speaks the documented HTTP contract of its
// backend through the shared api.Client and translates outcomes into values
// the UI layer can branch on directly.
package services
