package linode

// Data-transfer records for the Linode API. Every field is optional on the
// wire: absent keys decode to zero values because the API is externally
// versioned and may add or omit fields between releases. Create/update
// option structs use pointer fields with omitempty where the distinction
// between "unset" and "zero" matters for partial updates.

// Account describes the account that owns the API token.
type Account struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Company   string `json:"company"`
	Balance   float64 `json:"balance"`
	Country   string `json:"country"`
	ActiveSince string `json:"active_since"`
}

// Profile describes the user profile attached to the token.
type Profile struct {
	UID                int    `json:"uid"`
	Username           string `json:"username"`
	Email              string `json:"email"`
	Timezone           string `json:"timezone"`
	Restricted         bool   `json:"restricted"`
	TwoFactorAuth      bool   `json:"two_factor_auth"`
	AuthorizedKeys     []string `json:"authorized_keys"`
	EmailNotifications bool   `json:"email_notifications"`
}

// InstanceSpecs is the hardware allocation of an instance.
type InstanceSpecs struct {
	Disk     int `json:"disk"`
	Memory   int `json:"memory"`
	VCPUs    int `json:"vcpus"`
	Transfer int `json:"transfer"`
}

// Instance is a Linode compute instance.
type Instance struct {
	ID      int           `json:"id"`
	Label   string        `json:"label"`
	Region  string        `json:"region"`
	Type    string        `json:"type"`
	Status  string        `json:"status"`
	Image   string        `json:"image"`
	IPv4    []string      `json:"ipv4"`
	IPv6    string        `json:"ipv6"`
	Tags    []string      `json:"tags"`
	Specs   InstanceSpecs `json:"specs"`
	Created string        `json:"created"`
	Updated string        `json:"updated"`
}

// InstanceCreateOptions are the fields accepted when creating an instance.
type InstanceCreateOptions struct {
	Region          string   `json:"region"`
	Type            string   `json:"type"`
	Label           string   `json:"label,omitempty"`
	Image           string   `json:"image,omitempty"`
	RootPass        string   `json:"root_pass,omitempty"`
	AuthorizedKeys  []string `json:"authorized_keys,omitempty"`
	Tags            []string `json:"tags,omitempty"`
	BackupsEnabled  *bool    `json:"backups_enabled,omitempty"`
	PrivateIP       *bool    `json:"private_ip,omitempty"`
	FirewallID      *int     `json:"firewall_id,omitempty"`
	StackscriptID   *int     `json:"stackscript_id,omitempty"`
	SwapSize        *int     `json:"swap_size,omitempty"`
}

// InstanceResizeOptions are the fields accepted when resizing an instance.
type InstanceResizeOptions struct {
	Type          string `json:"type"`
	AllowAutoDiskResize *bool `json:"allow_auto_disk_resize,omitempty"`
}

// Volume is a block storage volume.
type Volume struct {
	ID             int      `json:"id"`
	Label          string   `json:"label"`
	Region         string   `json:"region"`
	Size           int      `json:"size"`
	Status         string   `json:"status"`
	LinodeID       *int     `json:"linode_id"`
	FilesystemPath string   `json:"filesystem_path"`
	Tags           []string `json:"tags"`
	Created        string   `json:"created"`
	Updated        string   `json:"updated"`
}

// VolumeCreateOptions are the fields accepted when creating a volume.
type VolumeCreateOptions struct {
	Label    string   `json:"label"`
	Region   string   `json:"region,omitempty"`
	Size     *int     `json:"size,omitempty"`
	LinodeID *int     `json:"linode_id,omitempty"`
	Tags     []string `json:"tags,omitempty"`
}

// VolumeAttachOptions name the instance a volume is attached to.
type VolumeAttachOptions struct {
	LinodeID int   `json:"linode_id"`
	ConfigID *int  `json:"config_id,omitempty"`
	PersistAcrossBoots *bool `json:"persist_across_boots,omitempty"`
}

// Domain is a DNS zone managed by Linode.
type Domain struct {
	ID          int      `json:"id"`
	Domain      string   `json:"domain"`
	Type        string   `json:"type"`
	Status      string   `json:"status"`
	SOAEmail    string   `json:"soa_email"`
	Description string   `json:"description"`
	TTLSec      int      `json:"ttl_sec"`
	Tags        []string `json:"tags"`
}

// DomainCreateOptions are the fields accepted when creating a domain.
type DomainCreateOptions struct {
	Domain      string   `json:"domain"`
	Type        string   `json:"type"`
	SOAEmail    string   `json:"soa_email,omitempty"`
	Description string   `json:"description,omitempty"`
	TTLSec      *int     `json:"ttl_sec,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

// DomainRecord is a single DNS record within a domain.
type DomainRecord struct {
	ID       int    `json:"id"`
	Type     string `json:"type"`
	Name     string `json:"name"`
	Target   string `json:"target"`
	Priority int    `json:"priority"`
	Weight   int    `json:"weight"`
	Port     int    `json:"port"`
	TTLSec   int    `json:"ttl_sec"`
}

// DomainRecordCreateOptions are the fields accepted when creating a record.
type DomainRecordCreateOptions struct {
	Type     string `json:"type"`
	Name     string `json:"name,omitempty"`
	Target   string `json:"target,omitempty"`
	Priority *int   `json:"priority,omitempty"`
	Weight   *int   `json:"weight,omitempty"`
	Port     *int   `json:"port,omitempty"`
	TTLSec   *int   `json:"ttl_sec,omitempty"`
}

// FirewallRule is one inbound or outbound firewall rule.
type FirewallRule struct {
	Label       string            `json:"label"`
	Action      string            `json:"action"`
	Protocol    string            `json:"protocol"`
	Ports       string            `json:"ports"`
	Addresses   FirewallAddresses `json:"addresses"`
	Description string            `json:"description"`
}

// FirewallAddresses are the CIDR ranges a rule applies to.
type FirewallAddresses struct {
	IPv4 []string `json:"ipv4"`
	IPv6 []string `json:"ipv6"`
}

// FirewallRuleSet is the complete rule configuration of a firewall.
type FirewallRuleSet struct {
	Inbound        []FirewallRule `json:"inbound"`
	InboundPolicy  string         `json:"inbound_policy"`
	Outbound       []FirewallRule `json:"outbound"`
	OutboundPolicy string         `json:"outbound_policy"`
}

// Firewall is a cloud firewall.
type Firewall struct {
	ID      int             `json:"id"`
	Label   string          `json:"label"`
	Status  string          `json:"status"`
	Rules   FirewallRuleSet `json:"rules"`
	Tags    []string        `json:"tags"`
	Created string          `json:"created"`
	Updated string          `json:"updated"`
}

// FirewallCreateOptions are the fields accepted when creating a firewall.
type FirewallCreateOptions struct {
	Label   string           `json:"label"`
	Rules   FirewallRuleSet  `json:"rules"`
	Tags    []string         `json:"tags,omitempty"`
	Devices *FirewallDevices `json:"devices,omitempty"`
}

// FirewallDevices lists the entities a firewall is assigned to on creation.
type FirewallDevices struct {
	Linodes       []int `json:"linodes,omitempty"`
	NodeBalancers []int `json:"nodebalancers,omitempty"`
}

// NodeBalancer is a managed load balancer.
type NodeBalancer struct {
	ID                 int      `json:"id"`
	Label              string   `json:"label"`
	Region             string   `json:"region"`
	Hostname           string   `json:"hostname"`
	IPv4               string   `json:"ipv4"`
	IPv6               string   `json:"ipv6"`
	ClientConnThrottle int      `json:"client_conn_throttle"`
	Tags               []string `json:"tags"`
	Created            string   `json:"created"`
	Updated            string   `json:"updated"`
}

// NodeBalancerCreateOptions are the fields accepted when creating a
// nodebalancer.
type NodeBalancerCreateOptions struct {
	Region             string   `json:"region"`
	Label              string   `json:"label,omitempty"`
	ClientConnThrottle *int     `json:"client_conn_throttle,omitempty"`
	Tags               []string `json:"tags,omitempty"`
}

// NodeBalancerConfig is a port configuration of a nodebalancer.
type NodeBalancerConfig struct {
	ID             int    `json:"id"`
	Port           int    `json:"port"`
	Protocol       string `json:"protocol"`
	Algorithm      string `json:"algorithm"`
	Stickiness     string `json:"stickiness"`
	Check          string `json:"check"`
	CheckPath      string `json:"check_path"`
	CheckInterval  int    `json:"check_interval"`
	NodeBalancerID int    `json:"nodebalancer_id"`
	NodesStatus    NodeBalancerNodesStatus `json:"nodes_status"`
}

// NodeBalancerNodesStatus summarizes backend node health.
type NodeBalancerNodesStatus struct {
	Up   int `json:"up"`
	Down int `json:"down"`
}

// ObjectStorageCluster is a region hosting object storage.
type ObjectStorageCluster struct {
	ID               string `json:"id"`
	Region           string `json:"region"`
	Status           string `json:"status"`
	Domain           string `json:"domain"`
	StaticSiteDomain string `json:"static_site_domain"`
}

// ObjectStorageBucket is an S3-compatible bucket.
type ObjectStorageBucket struct {
	Label    string `json:"label"`
	Cluster  string `json:"cluster"`
	Region   string `json:"region"`
	Hostname string `json:"hostname"`
	Objects  int    `json:"objects"`
	Size     int64  `json:"size"`
	Created  string `json:"created"`
}

// ObjectStorageBucketCreateOptions are the fields accepted when creating a
// bucket.
type ObjectStorageBucketCreateOptions struct {
	Label   string `json:"label"`
	Cluster string `json:"cluster"`
	ACL     string `json:"acl,omitempty"`
	CorsEnabled *bool `json:"cors_enabled,omitempty"`
}

// ObjectStorageKey is an access key pair for object storage.
type ObjectStorageKey struct {
	ID        int    `json:"id"`
	Label     string `json:"label"`
	AccessKey string `json:"access_key"`
	SecretKey string `json:"secret_key"`
	Limited   bool   `json:"limited"`
}

// ObjectStorageKeyCreateOptions are the fields accepted when creating a key.
type ObjectStorageKeyCreateOptions struct {
	Label string `json:"label"`
}

// LKECluster is a Linode Kubernetes Engine cluster.
type LKECluster struct {
	ID         int             `json:"id"`
	Label      string          `json:"label"`
	Region     string          `json:"region"`
	K8sVersion string          `json:"k8s_version"`
	Status     string          `json:"status"`
	Tags       []string        `json:"tags"`
	ControlPlane LKEControlPlane `json:"control_plane"`
	Created    string          `json:"created"`
	Updated    string          `json:"updated"`
}

// LKEControlPlane describes control plane options of an LKE cluster.
type LKEControlPlane struct {
	HighAvailability bool `json:"high_availability"`
}

// LKENodePool is a pool of worker nodes in an LKE cluster.
type LKENodePool struct {
	ID    int      `json:"id"`
	Type  string   `json:"type"`
	Count int      `json:"count"`
	Tags  []string `json:"tags"`
	Nodes []LKENode `json:"nodes"`
}

// LKENode is a single worker node.
type LKENode struct {
	ID         string `json:"id"`
	InstanceID int    `json:"instance_id"`
	Status     string `json:"status"`
}

// LKEClusterCreateOptions are the fields accepted when creating a cluster.
type LKEClusterCreateOptions struct {
	Label        string                     `json:"label"`
	Region       string                     `json:"region"`
	K8sVersion   string                     `json:"k8s_version"`
	NodePools    []LKENodePoolCreateOptions `json:"node_pools"`
	Tags         []string                   `json:"tags,omitempty"`
	ControlPlane *LKEControlPlane           `json:"control_plane,omitempty"`
}

// LKENodePoolCreateOptions describe one node pool in a create request.
type LKENodePoolCreateOptions struct {
	Type  string   `json:"type"`
	Count int      `json:"count"`
	Tags  []string `json:"tags,omitempty"`
}

// LKEKubeconfig carries the base64-encoded kubeconfig of a cluster.
type LKEKubeconfig struct {
	Kubeconfig string `json:"kubeconfig"`
}

// Region is an available deployment region.
type Region struct {
	ID           string   `json:"id"`
	Label        string   `json:"label"`
	Country      string   `json:"country"`
	Capabilities []string `json:"capabilities"`
	Status       string   `json:"status"`
}

// InstanceType is a purchasable compute plan.
type InstanceType struct {
	ID       string  `json:"id"`
	Label    string  `json:"label"`
	Class    string  `json:"class"`
	Disk     int     `json:"disk"`
	Memory   int     `json:"memory"`
	VCPUs    int     `json:"vcpus"`
	Transfer int     `json:"transfer"`
	Price    Price   `json:"price"`
}

// Price is the cost of a plan.
type Price struct {
	Hourly  float64 `json:"hourly"`
	Monthly float64 `json:"monthly"`
}

// Image is a deployable disk image.
type Image struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Vendor      string `json:"vendor"`
	Description string `json:"description"`
	IsPublic    bool   `json:"is_public"`
	Deprecated  bool   `json:"deprecated"`
	Size        int    `json:"size"`
	Created     string `json:"created"`
}
