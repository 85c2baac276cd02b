package nodestore

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const (
	V1MMRPrefix       = "v1/mmrs"
	V1MMRNodeBlobName = "nodes.log"
)

// LogBlobPath returns the path of the node log blob for the identified log
//
//	v1/mmrs/{log uuid}/nodes.log
func LogBlobPath(logID uuid.UUID) string {
	return fmt.Sprintf("%s/%s/%s", V1MMRPrefix, logID.String(), V1MMRNodeBlobName)
}

// LogIDFromBlobPath recovers the log identifier from a path produced by
// LogBlobPath
func LogIDFromBlobPath(blobPath string) (uuid.UUID, error) {
	rest, ok := strings.CutPrefix(blobPath, V1MMRPrefix+"/")
	if !ok {
		return uuid.Nil, fmt.Errorf("%w: %s", ErrLogIDRequired, blobPath)
	}
	id, ok := strings.CutSuffix(rest, "/"+V1MMRNodeBlobName)
	if !ok {
		return uuid.Nil, fmt.Errorf("%w: %s", ErrLogIDRequired, blobPath)
	}
	return uuid.Parse(id)
}
