package app

import "github.com/vidshare/vidshare-be/model"

// NormalizeFeed converts an assembled feed into plain records for the
// response layer. The per-type ToRecord mappings are total — every field is
// written out explicitly, so nothing the overlay computed (string ids,
// allowInteractions, engagement flags) can be dropped on the way out, and
// actor profiles arrive as ordinary key-value maps.
func NormalizeFeed(videos []*model.Video) []map[string]interface{} {
	records := make([]map[string]interface{}, len(videos))
	for i, video := range videos {
		records[i] = video.ToRecord()
	}
	return records
}
