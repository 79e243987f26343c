package dieseldx

type QueryHeapType int

const (
	QueryHeapOcclusion QueryHeapType = iota
	QueryHeapTimestamp
	QueryHeapPipelineStatistics
	QueryHeapSOStatistics
)

var queryHeapTypeNative = [...]_D3D12_QUERY_HEAP_TYPE{
	QueryHeapOcclusion:          _D3D12_QUERY_HEAP_TYPE_OCCLUSION,
	QueryHeapTimestamp:          _D3D12_QUERY_HEAP_TYPE_TIMESTAMP,
	QueryHeapPipelineStatistics: _D3D12_QUERY_HEAP_TYPE_PIPELINE_STATISTICS,
	QueryHeapSOStatistics:       _D3D12_QUERY_HEAP_TYPE_SO_STATISTICS,
}

func (t QueryHeapType) native() _D3D12_QUERY_HEAP_TYPE { return queryHeapTypeNative[t] }

func queryHeapTypeFromNative(n _D3D12_QUERY_HEAP_TYPE) (QueryHeapType, bool) {
	return fromNative[QueryHeapType](queryHeapTypeNative[:], n)
}

// QueryType is the native D3D12_QUERY_TYPE of a single query.
type QueryType int32

const (
	QueryOcclusion           QueryType = 0
	QueryBinaryOcclusion     QueryType = 1
	QueryTimestamp           QueryType = 2
	QueryPipelineStatistics  QueryType = 3
	QuerySOStatisticsStream0 QueryType = 4
)

// QueryHeap holds query results until they are resolved into a buffer.
type QueryHeap struct {
	inner *iD3D12QueryHeap
}
