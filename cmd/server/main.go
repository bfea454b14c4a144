package main

import (
	"fmt"
	"log"
	"net"

	"github.com/lioia/birank/pkg/node"
	"github.com/lioia/birank/pkg/utils"

	amqp "github.com/rabbitmq/amqp091-go"
	"google.golang.org/grpc"
)

func main() {
	// Read environment variables
	env, err := utils.ReadEnvVars()
	utils.FailOnError("Failed to read environment variables", err)
	utils.InitLog(env.NodeLog, env.ServerLog)

	config, err := utils.LoadConfiguration(env.Config)
	utils.FailOnError("Failed to load %s", err, env.Config)
	options, err := node.OptionsFromConfig(config)
	utils.FailOnError("Invalid ranking configuration", err)

	// Create connection
	lis, err := net.Listen("tcp", fmt.Sprintf("%s:%d", env.Host, env.Port))
	utils.FailOnError("Failed to listen for node server", err)

	n, err := node.NewNode(node.ParseRole(env.Role), lis.Addr().String(), options)
	utils.FailOnError("Failed to create node", err)

	if env.RabbitHost != "" {
		// Connect to RabbitMQ
		queue := fmt.Sprintf("amqp://%s:%s@%s:5672/", env.RabbitUser, env.RabbitPass, env.RabbitHost)
		queueConn, err := amqp.Dial(queue)
		utils.FailOnError("Could not connect to RabbitMQ", err)
		defer queueConn.Close()
		ch, err := queueConn.Channel()
		utils.FailOnError("Failed to open a channel to RabbitMQ", err)
		defer ch.Close()

		// Queue declaration
		work, err := utils.DeclareQueue(env.WorkQueue, ch)
		utils.FailOnError("Failed to declare '%s' queue", err, env.WorkQueue)
		result, err := utils.DeclareQueue(env.ResultQueue, ch)
		utils.FailOnError("Failed to declare '%s' queue", err, env.ResultQueue)
		n.Queue = &node.Queue{
			Conn:    queueConn,
			Channel: ch,
			Work:    work.Name,
			Result:  result.Name,
		}
	}

	// Running gRPC server in a goroutine
	status := make(chan bool)
	go func() {
		defer lis.Close()
		server := grpc.NewServer()
		node.RegisterRankerServer(server, &node.RankServerImpl{Node: n})
		log.Printf("Starting %s node %s at %s\n", node.RoleToString(n.Role), n.Id, n.Connection)
		status <- true
		err := server.Serve(lis)
		utils.FailOnError("Failed to serve", err)
	}()
	// Waiting for gRPC server to start
	<-status

	if n.Role == node.Master {
		go func() {
			e := node.NewApiServer(n)
			log.Printf("Starting API server at :%d\n", env.ApiPort)
			err := e.Start(fmt.Sprintf(":%d", env.ApiPort))
			utils.FailOnError("Failed to serve API", err)
		}()
	}
	// Node Update
	n.Update()
}
