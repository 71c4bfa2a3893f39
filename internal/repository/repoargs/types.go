package repoargs

type RepositoryName string

const (
	UserRepoName        RepositoryName = "user"
	CashPaymentRepoName RepositoryName = "cash_payment"
	AdminLogRepoName    RepositoryName = "admin_log"
)
