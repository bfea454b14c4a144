package node

import (
	"github.com/lioia/birank/pkg/rank"
	"github.com/lioia/birank/pkg/utils"
	gonanoid "github.com/matoous/go-nanoid/v2"
	amqp "github.com/rabbitmq/amqp091-go"
)

type Role int32

const (
	Master Role = iota // Serves the API, dispatches jobs and collects results
	Worker             // Computes jobs read from the work queue
)

type Node struct {
	Id         string                         // Random node identifier
	Role       Role                           // What this node has to do
	Connection string                         // This node connection information
	Options    rank.Options                   // Defaults applied to incoming jobs
	Queue      *Queue                         // Queue information (nil: no RabbitMQ, jobs run locally)
	Results    *utils.SafeMap[string, Result] // Master state: finished jobs by id
}

type Queue struct {
	Conn    *amqp.Connection
	Channel *amqp.Channel
	Work    string // work queue name
	Result  string // result queue name
}

func NewNode(role Role, connection string, options rank.Options) (*Node, error) {
	id, err := gonanoid.New()
	if err != nil {
		return nil, err
	}
	return &Node{
		Id:         id,
		Role:       role,
		Connection: connection,
		Options:    options,
		Results:    utils.NewSafeMap[string, Result](),
	}, nil
}

func RoleToString(role Role) string {
	switch role {
	case Master:
		return "Master"
	case Worker:
		return "Worker"
	}
	return "Undefined"
}

func ParseRole(role string) Role {
	if role == "worker" {
		return Worker
	}
	return Master
}

// OptionsFromConfig overlays the non-zero fields of config on the library
// defaults.
func OptionsFromConfig(config utils.Config) (rank.Options, error) {
	opts := rank.DefaultOptions()
	if config.Damping != 0 {
		opts.Damping = config.Damping
	}
	if config.Alpha != 0 {
		opts.Alpha = config.Alpha
	}
	if config.Beta != 0 {
		opts.Beta = config.Beta
	}
	if config.MaxIter != 0 {
		opts.MaxIter = config.MaxIter
	}
	if config.Tol != 0 {
		opts.Tol = config.Tol
	}
	if config.Normalizer != "" {
		n, err := rank.ParseNormalizer(config.Normalizer)
		if err != nil {
			return opts, err
		}
		opts.Normalizer = n
	}
	return opts, nil
}

func (n *Node) Update() {
	if n.Role == Worker {
		utils.NodeLog("worker", "update")
		n.workerUpdate()
	} else if n.Role == Master {
		utils.NodeLog("master", "update")
		n.masterUpdate()
	}
}
