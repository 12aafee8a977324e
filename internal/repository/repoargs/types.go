package repoargs

type RepositoryName string

const (
	ProductRepoName     RepositoryName = "product"
	TransactionRepoName RepositoryName = "transaction"
	CustomerRepoName    RepositoryName = "customer"
	DeliveryRepoName    RepositoryName = "delivery"
)

// BatchExecQueryRow колбэк результата i-го запроса батча.
type BatchExecQueryRow func(i int, err error)
